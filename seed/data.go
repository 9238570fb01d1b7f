package seed

import "moviehub/models"

func rating(v float64) *float64 { return &v }

func episodes(n int) *int { return &n }

// Movies is the sample movie catalog.
var Movies = []models.MovieInput{
	// Action
	{Title: "Cybernetic Odyssey", Year: 2024, Rating: rating(8.5), Category: "Action", Description: "A thrilling sci-fi action film about futuristic technology", ImageURL: "https://picsum.photos/seed/movie1/400/600", Duration: 128, Director: "James Director", Cast: "Action Star"},
	{Title: "The Last Stand", Year: 2023, Rating: rating(7.9), Category: "Action", Description: "An intense action thriller", ImageURL: "https://picsum.photos/seed/movie2/400/600", Duration: 110, Director: "Action Director"},
	{Title: "Neon Shadows", Year: 2022, Rating: rating(8.2), Category: "Action", Description: "Neon-lit cyberpunk action", ImageURL: "https://picsum.photos/seed/movie4/400/600", Duration: 95},

	// Horror
	{Title: "Echoes of Eternity", Year: 2024, Rating: rating(9.1), Category: "Horror", Description: "A psychological horror masterpiece", ImageURL: "https://picsum.photos/seed/movie3/400/600", Duration: 115, Director: "Horror Master"},
	{Title: "Quantum Rift", Year: 2025, Rating: rating(8.8), Category: "Horror", Description: "Interdimensional horror", ImageURL: "https://picsum.photos/seed/movie5/400/600", Duration: 120},

	// Drama
	{Title: "Forgotten Kingdom", Year: 2021, Rating: rating(7.5), Category: "Drama", Description: "A emotional journey through kingdoms lost", ImageURL: "https://picsum.photos/seed/movie6/400/600", Duration: 145},
	{Title: "Starlight Runner", Year: 2024, Rating: rating(8.1), Category: "Drama", Description: "A heartwarming drama about dreams", ImageURL: "https://picsum.photos/seed/new1/400/600", Duration: 135},

	// Love Story
	{Title: "Abyssal Zone", Year: 2024, Rating: rating(7.8), Category: "Love Story", Description: "A deep ocean romance", ImageURL: "https://picsum.photos/seed/new2/400/600", Duration: 125},
	{Title: "Whispering Woods", Year: 2024, Rating: rating(8.9), Category: "Love Story", Description: "A magical forest love tale", ImageURL: "https://picsum.photos/seed/new6/400/600", Duration: 130},

	// Sci-Fi
	{Title: "Chronos Paradox", Year: 2023, Rating: rating(8.4), Category: "Sci-Fi", Description: "A mind-bending time travel adventure", ImageURL: "https://picsum.photos/seed/new3/400/600", Duration: 140},
	{Title: "Solar Flare", Year: 2024, Rating: rating(8.0), Category: "Sci-Fi", Description: "Space exploration thriller", ImageURL: "https://picsum.photos/seed/new4/400/600", Duration: 118},

	// Adventure
	{Title: "Ironclad Valor", Year: 2023, Rating: rating(7.6), Category: "Adventure", Description: "An epic adventure across continents", ImageURL: "https://picsum.photos/seed/new5/400/600", Duration: 155},
}

// Seasons is the sample series catalog.
var Seasons = []models.SeasonInput{
	{Title: "Breaking Reality", Year: 2024, Rating: rating(8.9), ImageURL: "https://picsum.photos/seed/series1/400/600", Episodes: episodes(10)},
	{Title: "Digital Dreams", Year: 2023, Rating: rating(8.3), ImageURL: "https://picsum.photos/seed/series2/400/600", Episodes: episodes(8)},
	{Title: "Cosmic Chronicles", Year: 2024, Rating: rating(8.7), ImageURL: "https://picsum.photos/seed/series3/400/600", Episodes: episodes(12)},
	{Title: "The Midnight Files", Year: 2023, Rating: rating(8.1), ImageURL: "https://picsum.photos/seed/series4/400/600", Episodes: episodes(10)},
	{Title: "Lost Horizons", Year: 2024, Rating: rating(8.5), ImageURL: "https://picsum.photos/seed/series5/400/600", Episodes: episodes(9)},
}

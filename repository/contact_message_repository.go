package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"moviehub/database"
	"moviehub/models"
)

const contactColumns = `id, name, email, message, status, created_at`

// ContactMessageRepository handles contact message data operations
type ContactMessageRepository struct {
	db    *database.DB
	now   func() time.Time
	newID func() string
}

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(db *database.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db, now: utcNow, newID: newID}
}

func scanContactMessage(row database.RowScanner) (models.ContactMessage, error) {
	var msg models.ContactMessage
	var status sql.NullString
	var createdAt sql.NullTime

	if err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &status, &createdAt); err != nil {
		return msg, err
	}

	msg.Status = models.MessageStatus(status.String)
	msg.CreatedAt = createdAt.Time
	return msg, nil
}

// Create stores a new message. The status always starts as unread.
func (r *ContactMessageRepository) Create(ctx context.Context, input models.ContactInput) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		ID:        r.newID(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		Status:    models.StatusUnread,
		CreatedAt: r.now(),
	}

	query := `INSERT INTO contact_messages (id, name, email, message, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.Execute(ctx, query, msg.ID, msg.Name, msg.Email, msg.Message, string(msg.Status), msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	return msg, nil
}

// FindByID returns a message or nil. It has no side effects.
func (r *ContactMessageRepository) FindByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	msg, err := database.GetOne(ctx, r.db, scanContactMessage,
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return msg, nil
}

// FindAll lists messages newest first.
func (r *ContactMessageRepository) FindAll(ctx context.Context, limit, offset int) ([]models.ContactMessage, error) {
	msgs, err := database.GetAll(ctx, r.db, scanContactMessage,
		`SELECT `+contactColumns+` FROM contact_messages
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	return msgs, nil
}

// FindByEmail returns every message sent from email, newest first.
func (r *ContactMessageRepository) FindByEmail(ctx context.Context, email string) ([]models.ContactMessage, error) {
	msgs, err := database.GetAll(ctx, r.db, scanContactMessage,
		`SELECT `+contactColumns+` FROM contact_messages
		 WHERE email = ?
		 ORDER BY created_at DESC, rowid DESC`,
		email)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages by email: %w", err)
	}
	return msgs, nil
}

// UpdateStatus sets the status without checking it and returns the refreshed
// row, or nil when the id is unknown.
func (r *ContactMessageRepository) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (*models.ContactMessage, error) {
	res, err := r.db.Execute(ctx, `UPDATE contact_messages SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact message status: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

// Delete removes a message and reports whether it existed.
func (r *ContactMessageRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.Execute(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact message: %w", err)
	}
	return res.RowsAffected == 1, nil
}

// GetStats counts all and unread messages with two separate queries. The
// pair is only a consistent snapshot when nothing writes in between.
func (r *ContactMessageRepository) GetStats(ctx context.Context) (*models.ContactStats, error) {
	stats := &models.ContactStats{}

	total, err := r.count(ctx, `SELECT COUNT(*) FROM contact_messages`)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}
	stats.Total = total

	unread, err := r.count(ctx, `SELECT COUNT(*) FROM contact_messages WHERE status = ?`, string(models.StatusUnread))
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}
	stats.Unread = unread

	return stats, nil
}

func (r *ContactMessageRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	n, err := database.GetOne(ctx, r.db, func(row database.RowScanner) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	}, query, args...)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, nil
	}
	return *n, nil
}

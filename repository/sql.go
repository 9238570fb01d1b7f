package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Helper functions for handling null values
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullInt stores 0 as NULL. Year, duration and episodes use 0 for "unknown",
// and NULL reads back as 0, so the JSON value round-trips.
func nullInt(i int) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(i), Valid: true}
}

func newID() string {
	return uuid.NewString()
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// assignments accumulates the SET clause of a partial UPDATE.
type assignments struct {
	columns []string
	args    []any
}

func (a *assignments) set(column string, value any) {
	a.columns = append(a.columns, column+" = ?")
	a.args = append(a.args, value)
}

func (a *assignments) empty() bool {
	return len(a.columns) == 0
}

// statement renders "UPDATE table SET ..., updated_at = ? WHERE id = ?" with
// its arguments.
func (a *assignments) statement(table, id string, updatedAt time.Time) (string, []any) {
	query := "UPDATE " + table + " SET " + strings.Join(a.columns, ", ") + ", updated_at = ? WHERE id = ?"
	args := append(append([]any{}, a.args...), updatedAt, id)
	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns q into a LIKE pattern matching q anywhere, with
// wildcards in q taken literally. Use with ESCAPE '\'.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

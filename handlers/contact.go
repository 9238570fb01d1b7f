package handlers

import (
	"context"
	"net/http"

	"moviehub/logging"
	"moviehub/models"
	"moviehub/validation"

	"github.com/gorilla/mux"
)

// ContactStore is the storage the contact endpoints depend on.
type ContactStore interface {
	Create(ctx context.Context, input models.ContactInput) (*models.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*models.ContactMessage, error)
	FindAll(ctx context.Context, limit, offset int) ([]models.ContactMessage, error)
	FindByEmail(ctx context.Context, email string) ([]models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (*models.ContactMessage, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetStats(ctx context.Context) (*models.ContactStats, error)
}

// ContactHandler serves /api/contact.
type ContactHandler struct {
	messages ContactStore
}

// NewContactHandler creates a contact handler
func NewContactHandler(messages ContactStore) *ContactHandler {
	return &ContactHandler{messages: messages}
}

var errMessageNotFound = &models.NotFoundError{Resource: "Message"}

const thankYouMessage = "Thank you for your message! We will get back to you soon."

// Submit stores a contact form submission.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := decodeBody(w, r, &input); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validation.Struct(&input); err != nil {
		respondError(w, r, err)
		return
	}

	msg, err := h.messages.Create(context.WithoutCancel(r.Context()), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.Info().Str("id", msg.ID).Msg("Contact message received")
	respondJSON(w, http.StatusCreated, &models.APIResponse{
		Success: true,
		Data:    msg,
		Message: thankYouMessage,
	})
}

// List returns messages newest first. ?email narrows the list to one sender
// and ignores paging.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	if email := r.URL.Query().Get("email"); email != "" {
		msgs, err := h.messages.FindByEmail(ctx, email)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondList(w, msgs)
		return
	}

	page, err := parsePage(r, defaultContactLimit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	msgs, err := h.messages.FindAll(ctx, page.Limit, page.Offset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondList(w, msgs)
}

// Get returns a single message. Reading an unread message marks it read, and
// the response carries the updated row.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())
	id := mux.Vars(r)["id"]

	msg, err := h.messages.FindByID(ctx, id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if msg == nil {
		respondError(w, r, errMessageNotFound)
		return
	}

	if msg.Status == models.StatusUnread {
		read, err := h.messages.UpdateStatus(ctx, id, models.StatusRead)
		if err != nil {
			respondError(w, r, err)
			return
		}
		// Deleted between the two statements.
		if read == nil {
			respondError(w, r, errMessageNotFound)
			return
		}
		msg = read
	}

	respondData(w, http.StatusOK, msg)
}

// UpdateStatus sets a message status to unread, read or replied.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input models.StatusInput
	if err := decodeBody(w, r, &input); err != nil {
		respondError(w, r, err)
		return
	}
	if err := validation.Struct(&input); err != nil {
		respondError(w, r, err)
		return
	}

	msg, err := h.messages.UpdateStatus(context.WithoutCancel(r.Context()), mux.Vars(r)["id"], input.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if msg == nil {
		respondError(w, r, errMessageNotFound)
		return
	}
	respondData(w, http.StatusOK, msg)
}

// Delete removes a message.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.messages.Delete(context.WithoutCancel(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !deleted {
		respondError(w, r, errMessageNotFound)
		return
	}
	respondMessage(w, "Message deleted successfully")
}

// Stats returns the total and unread counts.
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.messages.GetStats(context.WithoutCancel(r.Context()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}

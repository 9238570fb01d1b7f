package models

import "time"

// MessageStatus represents where a contact message is in the inbox workflow
type MessageStatus string

// Message status constants
const (
	StatusUnread  MessageStatus = "unread"
	StatusRead    MessageStatus = "read"
	StatusReplied MessageStatus = "replied"
)

// ContactMessage represents a message submitted through the contact form
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ContactInput is the contact form body.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contactemail"`
	Message string `json:"message" validate:"required"`
}

// StatusInput is the body of a status change.
type StatusInput struct {
	Status MessageStatus `json:"status" validate:"oneof=unread read replied"`
}

// ContactStats summarizes the inbox
type ContactStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

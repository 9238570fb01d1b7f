package models

import "strings"

// ValidationError reports missing or malformed request input. It is raised
// before any storage access.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingFields builds the error returned when required fields are absent.
func MissingFields(fields ...string) *ValidationError {
	return &ValidationError{
		Message: "Missing required fields: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

// NotFoundError reports an id lookup miss.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

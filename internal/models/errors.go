package models

import "fmt"

// ValidationError indicates input that violates a registry invariant.
// Surfaced to clients as a 400 response.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError indicates a lookup for a hospital that does not exist.
// Carries the requested id for message formatting and is surfaced as a 404.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hospital with ID %d not found", e.ID)
}

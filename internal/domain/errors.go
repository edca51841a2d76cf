package domain

import "errors"

var (
	ErrIDRequired    = errors.New("id is required")
	ErrEventNotFound = errors.New("event not found")
	ErrVenueNotFound = errors.New("venue not found")
)

package domain

import "errors"

var (
	// ErrInsufficientBalance is returned by the transfer engine when the
	// requested quantity or the network fee exceeds the available quantity.
	// The call has no partial effect.
	ErrInsufficientBalance = errors.New("insufficient balance on source platform")

	// ErrNotFound is returned by repositories when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicatePlatform is returned when creating a platform whose name
	// is already taken by the same user
	ErrDuplicatePlatform = errors.New("platform name already exists")

	// ErrInvalidRequest marks a caller contract violation detected by a
	// service (negative quantities, same source and destination, ...)
	ErrInvalidRequest = errors.New("invalid request")
)

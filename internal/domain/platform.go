package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Platform represents a custody platform (exchange, wallet, cold storage)
// where the user holds assets.
type Platform struct {
	ID   uuid.UUID
	Name string
}

// Validate ensures the platform adheres to domain rules
func (p *Platform) Validate() error {
	if !ValidPlatformName(p.Name) {
		return errors.New("platform name must be 1-24 letters, digits, spaces or hyphens")
	}
	return nil
}

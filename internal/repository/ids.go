package repository

import "github.com/google/uuid"

const (
	PrefixSlot    = "slot"
	PrefixBooking = "book"
	PrefixUser    = "user"
)

// IDGenerator hands out unique string identifiers. The only contract callers
// rely on is uniqueness.
type IDGenerator interface {
	NewID(prefix string) string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

package pkguid

import "github.com/google/uuid"

type StringID interface {
	Generate() string
}

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (UUID) Generate() string {
	return uuid.NewString()
}

// Static always returns the same id. Useful in tests.
type Static string

func (s Static) Generate() string {
	return string(s)
}

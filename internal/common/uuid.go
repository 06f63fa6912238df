package common

import (
	"strings"

	"github.com/google/uuid"
)

// UUID is a canonical lowercase uuid string. Kept as a string type so it
// scans and marshals without adapters.
type UUID string

func NewUUID() UUID {
	return UUID(uuid.NewString())
}

func ParseUUID(value string) (UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return UUID(parsed.String()), nil
}

func (u UUID) String() string {
	return string(u)
}

package internal

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque identifier: a random UUIDv4 with the dashes
// stripped. Uniqueness is the only property callers may rely on.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

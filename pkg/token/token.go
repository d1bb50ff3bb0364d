package token

import (
	"strings"

	"github.com/google/uuid"
)

// Length of a transaction token.
const Length = 18

// New returns a fixed-length token derived from a random UUID: the dashes
// are stripped and the result truncated to Length hex characters.
func New() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id[:Length]
}

// README: Common ID value object and generator used across modules.
package types

import (
	"crypto/rand"
	"encoding/hex"
)

type ID string

// NewID returns a random 32-char hex identifier.
func NewID() ID {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("types: rand.Read failed: " + err.Error())
	}
	return ID(hex.EncodeToString(b))
}

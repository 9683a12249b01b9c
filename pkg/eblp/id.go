package eblp

import (
	"crypto/rand"
	"io"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh plugin identifier on every call.
type IDGenerator func() string

// idFragmentLen is the number of hex characters kept from the UUID.
const idFragmentLen = 8

// GenerateID returns "eblan." followed by 8 lowercase hex characters of a
// random version 4 UUID read from crypto/rand. It panics if the system
// random source fails, as uuid.New does.
func GenerateID() string {
	return NewIDGenerator(rand.Reader)()
}

// NewIDGenerator builds an IDGenerator drawing UUID bytes from r.
// The generator panics if r cannot supply 16 bytes.
func NewIDGenerator(r io.Reader) IDGenerator {
	return func() string {
		u := uuid.Must(uuid.NewRandomFromReader(r))

		return IDPrefix + u.String()[:idFragmentLen]
	}
}

package resume

import "github.com/google/uuid"

// IDGenerator produces unique, opaque entry ids. Injected so tests can pin
// deterministic ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production generator, backed by random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

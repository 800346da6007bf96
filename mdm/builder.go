// mdm/builder.go
package mdm

import (
	"github.com/deploymenttheory/go-api-sdk-addigy/identifier"
)

// Builder constructs payloads. It holds no state besides its identifier generator and is safe for
// concurrent use when the generator is.
type Builder struct {
	ids identifier.Generator
}

// NewBuilder returns a Builder drawing identifiers from ids, or random UUIDs when ids is nil.
func NewBuilder(ids identifier.Generator) *Builder {
	if ids == nil {
		ids = identifier.Default
	}
	return &Builder{ids: ids}
}

// single starts a one-payload policy: a fresh group id followed by a fresh instance id.
func (b *Builder) single(kind PayloadKind, displayName string) BasePayload {
	groupID := b.ids.NewID()
	return newBasePayload(kind, groupID, b.ids.NewID(), displayName)
}

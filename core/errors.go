package core

import "github.com/pkg/errors"

// Error taxonomy shared by the registry, factories and the spawner
// Call sites wrap these with errors.Wrapf and callers match with errors.Is
var (
	// ErrResourceLoad reports a texture, shader or sound that could not be resolved
	// The owning actor cannot be used
	ErrResourceLoad = errors.New("resource load failure")

	// ErrSpawn reports an entity construction that was abandoned
	ErrSpawn = errors.New("spawn failure")

	// ErrInvariant reports use of a handle whose entity no longer exists
	ErrInvariant = errors.New("invariant violation")
)

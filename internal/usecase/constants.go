package usecase

import "time"

const (
	// DefaultListLimit applies when a caller does not specify how many
	// rows to return. Explicit zero or negative limits are rejected.
	DefaultListLimit = 10

	// MaxListLimit caps listing queries.
	MaxListLimit = 100

	// BalanceCacheTTL bounds staleness of the snapshot cache; the cache
	// is invalidated on every committed transaction anyway.
	BalanceCacheTTL = 5 * time.Minute
)

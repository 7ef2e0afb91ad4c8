// Package entity defines the entities and errors used in the application.
// It includes the Link struct, which represents an alias registered for a
// destination URL, along with the sentinel errors shared across layers.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrEmptyDestination is returned when a submitted destination is empty after trimming.
	ErrEmptyDestination = errors.New("destination is empty")
	// ErrInvalidDestination is returned when a submitted destination is not a well-formed absolute URL.
	ErrInvalidDestination = errors.New("destination is not a valid url")
	// ErrAliasNotFound is returned when an alias is absent from the registry.
	ErrAliasNotFound = errors.New("alias not found")
)

// Link represents a registered destination and the alias standing in for it.
type Link struct {
	Alias       string    // Alias is the base-62 code the destination is keyed by.
	Destination string    // Destination is the normalized absolute URL the alias resolves to.
	VisitCount  int64     // VisitCount is the number of times the alias has been resolved.
	SequenceID  uint64    // SequenceID is the registration sequence number the alias encodes.
	CreatedAt   time.Time // CreatedAt is the timestamp when the link was registered.
}

// RegistryStats aggregates counters over every link currently registered.
type RegistryStats struct {
	TotalAliases int64 // TotalAliases is the number of aliases in the registry.
	TotalVisits  int64 // TotalVisits is the sum of visit counts across all links.
}

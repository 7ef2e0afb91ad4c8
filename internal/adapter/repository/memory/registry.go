// Package memory provides the in-memory repository adapter backing the link
// registry. Storage is volatile: every record lives for exactly one process
// lifetime and is discarded on exit.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/Vaibhavmishra08/urlshortner/internal/base62"
	"github.com/Vaibhavmishra08/urlshortner/internal/entity"
)

// Registry maps aliases to links and assigns aliases on insert by encoding a
// monotonic sequence counter. Sequence ids start at 1, strictly increase and
// are never reused, so alias uniqueness holds by construction.
//
// A single mutex serializes all operations; the methods never block on
// anything else, so there are no context parameters.
type Registry struct {
	mu           sync.Mutex
	links        map[string]*entity.Link
	nextSequence uint64
	now          func() time.Time
}

// NewRegistry returns an empty registry whose first registration receives
// sequence id 1 and therefore alias "1".
func NewRegistry() *Registry {
	return &Registry{
		links:        make(map[string]*entity.Link),
		nextSequence: 1,
		now:          time.Now,
	}
}

// Register stores destination under the next alias and returns the stored
// record. The destination must already be validated; Register itself never
// fails.
func (r *Registry) Register(destination string) *entity.Link {
	r.mu.Lock()
	defer r.mu.Unlock()

	link := &entity.Link{
		Alias:       base62.Encode(r.nextSequence),
		Destination: destination,
		VisitCount:  0,
		SequenceID:  r.nextSequence,
		CreatedAt:   r.now(),
	}
	r.nextSequence++
	r.links[link.Alias] = link

	return snapshot(link)
}

// Resolve looks up alias, increments its visit count by exactly 1 and returns
// the mutated record. An unknown alias yields entity.ErrAliasNotFound and no
// mutation.
func (r *Registry) Resolve(alias string) (*entity.Link, error) {
	const op = "adapter.repository.memory.Registry.Resolve"

	r.mu.Lock()
	defer r.mu.Unlock()

	link, ok := r.links[alias]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrAliasNotFound)
	}
	link.VisitCount++

	return snapshot(link), nil
}

// List returns a snapshot of every registered link in unspecified order;
// presentation layers sort as they see fit.
func (r *Registry) List() []*entity.Link {
	r.mu.Lock()
	defer r.mu.Unlock()

	links := make([]*entity.Link, 0, len(r.links))
	for _, link := range r.links {
		links = append(links, snapshot(link))
	}

	return links
}

// Stats reports the number of registered aliases and the sum of visit counts
// across all of them.
func (r *Registry) Stats() entity.RegistryStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := entity.RegistryStats{
		TotalAliases: int64(len(r.links)),
	}
	for _, link := range r.links {
		stats.TotalVisits += link.VisitCount
	}

	return stats
}

// snapshot copies a stored record so callers can never mutate registry state
// outside the lock.
func snapshot(link *entity.Link) *entity.Link {
	cp := *link
	return &cp
}

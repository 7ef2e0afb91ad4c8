// Package usecase orchestrates the core link operations: it validates
// submitted destinations before handing them to the registry and exposes the
// registry's read operations to the delivery layers.
package usecase

import (
	"fmt"

	"github.com/Vaibhavmishra08/urlshortner/internal/entity"
	"github.com/Vaibhavmishra08/urlshortner/internal/validate"
)

type linkRegistry interface {
	Register(destination string) *entity.Link
	Resolve(alias string) (*entity.Link, error)
	List() []*entity.Link
	Stats() entity.RegistryStats
}

type LinkUseCase struct {
	registry linkRegistry
}

func New(registry linkRegistry) *LinkUseCase {
	return &LinkUseCase{
		registry: registry,
	}
}

// Shorten validates and normalizes raw and registers it, returning the stored
// record. Validation failures surface entity.ErrEmptyDestination or
// entity.ErrInvalidDestination; the caller re-prompts for different input.
func (uc *LinkUseCase) Shorten(raw string) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.Shorten"

	destination, err := validate.Destination(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to validate destination: %w", op, err)
	}

	return uc.registry.Register(destination), nil
}

// Resolve looks up alias and counts the visit. An unknown alias surfaces
// entity.ErrAliasNotFound, a normal outcome the caller reports to its user.
func (uc *LinkUseCase) Resolve(alias string) (*entity.Link, error) {
	const op = "usecase.LinkUseCase.Resolve"

	link, err := uc.registry.Resolve(alias)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve alias: %w", op, err)
	}

	return link, nil
}

// Links returns a snapshot of every registered link in unspecified order.
func (uc *LinkUseCase) Links() []*entity.Link {
	return uc.registry.List()
}

// Stats returns the aggregate registry counters.
func (uc *LinkUseCase) Stats() entity.RegistryStats {
	return uc.registry.Stats()
}

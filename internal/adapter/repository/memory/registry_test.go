package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaibhavmishra08/urlshortner/internal/entity"
)

func TestRegistry_Register(t *testing.T) {
	t.Run("aliases follow the sequence", func(t *testing.T) {
		r := NewRegistry()

		first := r.Register("https://a.com")
		second := r.Register("https://b.com")
		third := r.Register("https://c.com")

		assert.Equal(t, "1", first.Alias)
		assert.Equal(t, "2", second.Alias)
		assert.Equal(t, "3", third.Alias)

		assert.Equal(t, uint64(1), first.SequenceID)
		assert.Equal(t, uint64(2), second.SequenceID)
		assert.Equal(t, uint64(3), third.SequenceID)
	})

	t.Run("fresh record", func(t *testing.T) {
		r := NewRegistry()
		now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
		r.now = func() time.Time { return now }

		link := r.Register("https://example.com")

		assert.Equal(t, "https://example.com", link.Destination)
		assert.Zero(t, link.VisitCount)
		assert.Equal(t, now, link.CreatedAt)
	})

	t.Run("returns a copy", func(t *testing.T) {
		r := NewRegistry()

		link := r.Register("https://example.com")
		link.VisitCount = 42
		link.Destination = "https://tampered.com"

		got, err := r.Resolve(link.Alias)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.Destination)
		assert.Equal(t, int64(1), got.VisitCount)
	})
}

func TestRegistry_Resolve(t *testing.T) {
	t.Run("alias not found", func(t *testing.T) {
		r := NewRegistry()
		r.Register("https://example.com")

		link, err := r.Resolve("missing")

		assert.ErrorIs(t, err, entity.ErrAliasNotFound)
		assert.Nil(t, link)
		assert.Equal(t, int64(1), r.Stats().TotalAliases)
		assert.Zero(t, r.Stats().TotalVisits)
	})

	t.Run("each resolve counts one visit", func(t *testing.T) {
		r := NewRegistry()
		alias := r.Register("https://example.com").Alias

		for want := int64(1); want <= 3; want++ {
			link, err := r.Resolve(alias)

			require.NoError(t, err)
			assert.Equal(t, want, link.VisitCount)
		}
	})

	t.Run("resolving one alias leaves others untouched", func(t *testing.T) {
		r := NewRegistry()
		first := r.Register("https://a.com").Alias
		second := r.Register("https://b.com").Alias

		_, err := r.Resolve(first)
		require.NoError(t, err)

		link, err := r.Resolve(second)

		require.NoError(t, err)
		assert.Equal(t, int64(1), link.VisitCount)
	})
}

func TestRegistry_List(t *testing.T) {
	t.Run("empty registry", func(t *testing.T) {
		r := NewRegistry()

		assert.Empty(t, r.List())
	})

	t.Run("snapshot of every entry", func(t *testing.T) {
		r := NewRegistry()
		r.Register("https://a.com")
		r.Register("https://b.com")
		r.Register("https://c.com")

		links := r.List()

		require.Len(t, links, 3)

		seen := make(map[string]string, len(links))
		for _, link := range links {
			seen[link.Alias] = link.Destination
		}
		assert.Equal(t, map[string]string{
			"1": "https://a.com",
			"2": "https://b.com",
			"3": "https://c.com",
		}, seen)
	})
}

func TestRegistry_Stats(t *testing.T) {
	t.Run("empty registry", func(t *testing.T) {
		r := NewRegistry()

		assert.Equal(t, entity.RegistryStats{}, r.Stats())
	})

	t.Run("visits sum across aliases", func(t *testing.T) {
		r := NewRegistry()
		first := r.Register("https://a.com").Alias
		second := r.Register("https://b.com").Alias
		r.Register("https://c.com")

		for i := 0; i < 3; i++ {
			_, err := r.Resolve(first)
			require.NoError(t, err)
		}
		for i := 0; i < 2; i++ {
			_, err := r.Resolve(second)
			require.NoError(t, err)
		}

		assert.Equal(t, entity.RegistryStats{
			TotalAliases: 3,
			TotalVisits:  5,
		}, r.Stats())
	})
}

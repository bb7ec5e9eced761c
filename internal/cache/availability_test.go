package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberclub/booking-api/internal/domain/booking"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewAvailabilityCache(client, time.Minute), mr
}

func sampleSlots() []domain.SlotCandidate {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	return []domain.SlotCandidate{
		{Start: time.Date(2030, time.January, 7, 9, 0, 0, 0, loc), Occupied: false},
		{Start: time.Date(2030, time.January, 7, 9, 45, 0, 0, loc), Occupied: true},
	}
}

func TestAvailabilityCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, hit := c.Get(ctx, 1, "2030-01-07")
	assert.False(t, hit)

	slots := sampleSlots()
	c.Set(ctx, 1, "2030-01-07", slots)

	got, hit := c.Get(ctx, 1, "2030-01-07")
	require.True(t, hit)
	require.Len(t, got, 2)
	assert.True(t, got[0].Start.Equal(slots[0].Start))
	assert.True(t, got[1].Occupied)

	// outro barbeiro, outra chave
	_, hit = c.Get(ctx, 2, "2030-01-07")
	assert.False(t, hit)
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, 1, "2030-01-07", sampleSlots())
	c.Set(ctx, 1, "2030-01-08", sampleSlots())

	c.Invalidate(ctx, 1, "2030-01-07")

	_, hit := c.Get(ctx, 1, "2030-01-07")
	assert.False(t, hit)

	// o outro dia continua lá
	_, hit = c.Get(ctx, 1, "2030-01-08")
	assert.True(t, hit)
}

func TestAvailabilityCache_TTLExpira(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, 1, "2030-01-07", sampleSlots())

	mr.FastForward(2 * time.Minute)

	_, hit := c.Get(ctx, 1, "2030-01-07")
	assert.False(t, hit)
}

func TestAvailabilityCache_RedisForaNaoQuebra(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	mr.Close()

	// tudo vira miss silencioso
	c.Set(ctx, 1, "2030-01-07", sampleSlots())
	_, hit := c.Get(ctx, 1, "2030-01-07")
	assert.False(t, hit)
	c.Invalidate(ctx, 1, "2030-01-07")
}

func TestAvailabilityCache_NilSafe(t *testing.T) {
	var c *AvailabilityCache
	ctx := context.Background()

	c.Set(ctx, 1, "2030-01-07", sampleSlots())
	_, hit := c.Get(ctx, 1, "2030-01-07")
	assert.False(t, hit)
	c.Invalidate(ctx, 1, "2030-01-07")
}

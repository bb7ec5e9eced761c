package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/barberclub/booking-api/internal/domain/booking"
)

// AvailabilityCache memoiza a grade de horários por (barbeiro, dia).
// A grade é determinística para as mesmas entradas, então o TTL curto
// existe só para limitar o atraso de relógio (filtro de horário passado);
// escrita no livro de agendamentos invalida a chave na hora.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func key(barberID uint, dateKey string) string {
	return fmt.Sprintf("availability:%d:%s", barberID, dateKey)
}

// Get devolve (slots, true) em hit; (nil, false) em miss ou redis fora.
// Cache indisponível nunca derruba a consulta — só fica mais lenta.
func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID uint,
	dateKey string,
) ([]domain.SlotCandidate, bool) {

	if c == nil || c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, key(barberID, dateKey)).Result()
	if err != nil {
		return nil, false
	}

	var slots []domain.SlotCandidate
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID uint,
	dateKey string,
	slots []domain.SlotCandidate,
) {

	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}

	_ = c.client.Set(ctx, key(barberID, dateKey), data, c.ttl).Err()
}

func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	barberID uint,
	dateKey string,
) {

	if c == nil || c.client == nil {
		return
	}

	_ = c.client.Del(ctx, key(barberID, dateKey)).Err()
}

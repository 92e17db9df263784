package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberclubbr/barberclub-api/internal/config"
	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

// StatsCache guarda o snapshot do painel; o TTL acompanha o limite de
// obsolescência do agregado.
type StatsCache struct {
	rdb *redis.Client
}

func NewStatsCache(rdb *redis.Client) *StatsCache {
	return &StatsCache{rdb: rdb}
}

func statsKey(barbershopID uint) string {
	return fmt.Sprintf("dashboard:stats:%d", barbershopID)
}

// Get devolve (nil, nil) em cache miss.
func (c *StatsCache) Get(ctx context.Context, barbershopID uint) (*domain.Stats, error) {
	raw, err := c.rdb.Get(ctx, statsKey(barbershopID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var st domain.Stats
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *StatsCache) Set(ctx context.Context, barbershopID uint, st domain.Stats) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsKey(barbershopID), b, domain.StatsMaxAge).Err()
}

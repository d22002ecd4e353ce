// Package closures кеширует закрытия салона по датам в Redis.
// Закрытия меняются редко, а читаются при каждом расчете слотов.
package closures

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

const (
	keyPrefix = "barbershop:closures:"
	// Поколение даты растет при каждой инвалидации
	genPrefix = "barbershop:closures:gen:"
)

// Cache read-through кеш поверх Source.
// Без Redis клиента (или с нулевым TTL) все запросы идут напрямую в Source
type Cache struct {
	source  Source
	redis   *redis.Client
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// NewCache создает кеш закрытий. redisClient может быть nil
func NewCache(source Source, redisClient *redis.Client, ttl time.Duration, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		source:  source,
		redis:   redisClient,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

type cachedClosure struct {
	ID        int64            `json:"id"`
	Date      string           `json:"date"`
	Reason    string           `json:"reason"`
	IsFullDay bool             `json:"is_full_day"`
	StartTime *types.TimeOfDay `json:"start_time,omitempty"`
	EndTime   *types.TimeOfDay `json:"end_time,omitempty"`
}

// GetByDate возвращает закрытия на дату, читая сначала из Redis
func (c *Cache) GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error) {
	if !c.enabled() {
		return c.source.GetByDate(ctx, date)
	}

	key := cacheKey(date)
	if closures, ok := c.read(ctx, key); ok {
		c.observe("hit")
		return closures, nil
	}
	c.observe("miss")

	// Поколение читается до похода в Source: если инвалидация случится
	// во время чтения, устаревший результат не попадет в кеш
	gen, genOK := c.generation(ctx, date)

	closures, err := c.source.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	if genOK {
		c.write(ctx, date, gen, closures)
	}
	return closures, nil
}

// Invalidate сбрасывает кеш для даты. Ошибки Redis не фатальны: запись истечет по TTL
func (c *Cache) Invalidate(ctx context.Context, date time.Time) {
	if !c.enabled() {
		return
	}
	_, err := c.redis.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, genKey(date))
		p.Del(ctx, cacheKey(date))
		return nil
	})
	if err != nil {
		c.logger.Warn("ClosureCache: failed to invalidate %s: %v", date.Format(types.DateLayout), err)
	}
}

func (c *Cache) generation(ctx context.Context, date time.Time) (int64, bool) {
	gen, err := c.redis.Get(ctx, genKey(date)).Int64()
	if err == redis.Nil {
		return 0, true
	}
	if err != nil {
		c.logger.Warn("ClosureCache: failed to read generation %s: %v", genKey(date), err)
		return 0, false
	}
	return gen, true
}

func (c *Cache) enabled() bool {
	return c.redis != nil && c.ttl > 0
}

func (c *Cache) read(ctx context.Context, key string) ([]domain.ShopClosure, bool) {
	val, err := c.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("ClosureCache: failed to read %s: %v", key, err)
		return nil, false
	}

	var cached []cachedClosure
	if err := json.Unmarshal(val, &cached); err != nil {
		c.logger.Warn("ClosureCache: corrupted entry %s: %v", key, err)
		return nil, false
	}

	closures := make([]domain.ShopClosure, 0, len(cached))
	for _, cc := range cached {
		date, err := types.ParseDate(cc.Date)
		if err != nil {
			c.logger.Warn("ClosureCache: corrupted date in %s: %v", key, err)
			return nil, false
		}
		closures = append(closures, domain.ShopClosure{
			ID:        cc.ID,
			Date:      date,
			Reason:    cc.Reason,
			IsFullDay: cc.IsFullDay,
			StartTime: cc.StartTime,
			EndTime:   cc.EndTime,
		})
	}

	c.logger.Debug("ClosureCache: hit %s (%d closures)", key, len(closures))
	return closures, true
}

func (c *Cache) write(ctx context.Context, date time.Time, gen int64, closures []domain.ShopClosure) {
	key := cacheKey(date)
	cached := make([]cachedClosure, 0, len(closures))
	for _, cl := range closures {
		cached = append(cached, cachedClosure{
			ID:        cl.ID,
			Date:      cl.Date.Format(types.DateLayout),
			Reason:    cl.Reason,
			IsFullDay: cl.IsFullDay,
			StartTime: cl.StartTime,
			EndTime:   cl.EndTime,
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		c.logger.Warn("ClosureCache: failed to marshal %s: %v", key, err)
		return
	}

	gk := genKey(date)
	err = c.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, gk).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != gen {
			c.logger.Debug("ClosureCache: %s invalidated during read, skip write", key)
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, gk)
	if err == redis.TxFailedErr {
		c.logger.Debug("ClosureCache: %s invalidated during write, skip", key)
		return
	}
	if err != nil {
		c.logger.Warn("ClosureCache: failed to write %s: %v", key, err)
	}
}

func (c *Cache) observe(result string) {
	if c.metrics != nil {
		c.metrics.IncClosureCache(result)
	}
}

func cacheKey(date time.Time) string {
	return fmt.Sprintf("%s%s", keyPrefix, date.Format(types.DateLayout))
}

func genKey(date time.Time) string {
	return fmt.Sprintf("%s%s", genPrefix, date.Format(types.DateLayout))
}

package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/feliperamosdev/portfolio-api/internal/config"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

// ProposalCache é um cache read-through para a leitura pública de proposta
// por slug. Invalidação acontece ao salvar; falha de cache nunca derruba a
// requisição — cai no banco.
type ProposalCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProposalCache(cfg *config.Config) *ProposalCache {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("[cache] invalid REDIS_URL, cache disabled: %v", err)
		return nil
	}

	return &ProposalCache{
		rdb: redis.NewClient(opts),
		ttl: 5 * time.Minute,
	}
}

func key(slug string) string {
	return "proposal:slug:" + slug
}

func (c *ProposalCache) Get(ctx context.Context, slug string) (*models.Proposal, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(slug)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] get failed: %v", err)
		}
		return nil, false
	}

	var p models.Proposal
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *ProposalCache) Set(ctx context.Context, p *models.Proposal) {
	if c == nil || p == nil {
		return
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(p.Slug), raw, c.ttl).Err(); err != nil {
		log.Printf("[cache] set failed: %v", err)
	}
}

func (c *ProposalCache) Invalidate(ctx context.Context, slugs ...string) {
	if c == nil || len(slugs) == 0 {
		return
	}

	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, key(s))
		}
	}
	if len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[cache] invalidate failed: %v", err)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"supplyhub/internal/domain/entity"
	"supplyhub/internal/domain/repository"
	"supplyhub/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix = "product:"
	productEntity    = "product"
)

// cacheAsideProductRepo decorates a ProductRepository with a Redis read-through
// cache. Writes go to the store first and then drop the cached entry, so a
// failed invalidation can at worst serve a stale product until its TTL expires.
type cacheAsideProductRepo struct {
	repository.ProductRepository

	client  redis.UniversalClient
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewCacheAsideProductRepo wraps repo. A nil client returns repo unchanged.
func NewCacheAsideProductRepo(
	repo repository.ProductRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) repository.ProductRepository {
	if client == nil {
		return repo
	}

	return &cacheAsideProductRepo{
		ProductRepository: repo,
		client:            client,
		ttl:               ttl,
		metrics:           m,
		logger:            logger,
	}
}

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

func (r *cacheAsideProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	products, err := r.FindByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	product, ok := products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

// FindByIDs reads every key with one MGET and loads only the misses from the store.
// Redis failures degrade to a store read.
func (r *cacheAsideProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.WarnContext(ctx, "product cache read failed", slog.Any("error", err))
		values = make([]any, len(ids))
	}

	misses := make([]uuid.UUID, 0, len(ids))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			misses = append(misses, ids[i])

			continue
		}

		var product entity.Product
		if err := json.Unmarshal([]byte(raw), &product); err != nil {
			misses = append(misses, ids[i])

			continue
		}
		products[ids[i]] = &product
	}

	r.record(len(products), len(misses))

	if len(misses) == 0 {
		return products, nil
	}

	loaded, err := r.ProductRepository.FindByIDs(ctx, misses)
	if err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	for id, product := range loaded {
		products[id] = product

		data, err := json.Marshal(product)
		if err != nil {
			continue
		}
		pipe.Set(ctx, productKey(id), data, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.WarnContext(ctx, "product cache fill failed", slog.Any("error", err))
	}

	return products, nil
}

func (r *cacheAsideProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := r.ProductRepository.Create(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, product.ID)

	return nil
}

func (r *cacheAsideProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := r.ProductRepository.Update(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, product.ID)

	return nil
}

func (r *cacheAsideProductRepo) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.client.Del(ctx, productKey(id)).Err(); err != nil {
		r.logger.WarnContext(ctx, "product cache invalidation failed",
			slog.String("product_id", id.String()),
			slog.Any("error", err),
		)
	}
}

func (r *cacheAsideProductRepo) record(hits, misses int) {
	if r.metrics == nil {
		return
	}
	if hits > 0 {
		r.metrics.CacheHit(productEntity, hits)
	}
	if misses > 0 {
		r.metrics.CacheMiss(productEntity, misses)
	}
}

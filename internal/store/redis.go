package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	indexKey  = "pokerhands:runs"
	keyPrefix = "pokerhands:run:"

	// listPageSize is how many index entries List fetches per round trip.
	listPageSize = 100
)

func recordKey(id string) string {
	return keyPrefix + id
}

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore returns a Store backed by redis. Records are JSON values
// indexed by a sorted set scored by creation time. A ttl of zero keeps
// records forever.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (r *redisStore) Save(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	p := r.rdb.TxPipeline()
	p.Set(ctx, recordKey(rec.ID), data, r.ttl)
	p.ZAdd(ctx, indexKey, redis.Z{Score: float64(rec.CreatedAt.UnixNano()), Member: rec.ID})
	if _, err := p.Exec(ctx); err != nil {
		return fmt.Errorf("saving record %s: %w", rec.ID, err)
	}
	return nil
}

func (r *redisStore) Get(ctx context.Context, id string) (Record, error) {
	data, err := r.rdb.Get(ctx, recordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("loading record %s: %w", id, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decoding record %s: %w", id, err)
	}
	return rec, nil
}

// List walks the index newest first, a page at a time, until limit live
// records are found or the index runs out. Index entries whose record has
// expired are skipped and then dropped from the index.
func (r *redisStore) List(ctx context.Context, limit int) ([]Record, error) {
	page := int64(listPageSize)
	if limit > 0 {
		page = int64(max(limit, listPageSize))
	}

	var (
		out   []Record
		stale []any
	)
	for start := int64(0); limit <= 0 || len(out) < limit; start += page {
		ids, err := r.rdb.ZRevRange(ctx, indexKey, start, start+page-1).Result()
		if err != nil {
			return nil, fmt.Errorf("listing records: %w", err)
		}

		for _, id := range ids {
			rec, err := r.Get(ctx, id)
			if errors.Is(err, ErrNotFound) {
				stale = append(stale, id)
				continue
			}
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
			if limit > 0 && len(out) == limit {
				break
			}
		}

		if int64(len(ids)) < page {
			break
		}
	}

	if len(stale) > 0 {
		_ = r.rdb.ZRem(ctx, indexKey, stale...).Err() // best effort
	}
	if out == nil {
		out = []Record{}
	}
	return out, nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/togglewalk/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// farFuture scores index entries that never expire (2100-01-01).
const farFuture = 4102444800

// Store implements ports.ResultStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored results.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored results.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "togglewalk:result:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(fingerprint string) string {
	return s.prefix + fingerprint
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save writes the outcome as JSON and indexes the fingerprint by expiry.
func (s *Store) Save(ctx context.Context, fingerprint string, outcome domain.Outcome) error {
	if !outcome.Valid() {
		return fmt.Errorf("refusing to store invalid outcome %q", outcome.Kind)
	}
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = farFuture
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(fingerprint), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: fingerprint})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the outcome for a fingerprint.
func (s *Store) Load(ctx context.Context, fingerprint string) (domain.Outcome, error) {
	val, err := s.client.Get(ctx, s.key(fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return domain.Outcome{}, domain.ErrResultNotFound
		}
		return domain.Outcome{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	var outcome domain.Outcome
	if err := json.Unmarshal(val, &outcome); err != nil {
		return domain.Outcome{}, fmt.Errorf("failed to unmarshal outcome: %w", err)
	}
	if !outcome.Valid() {
		return domain.Outcome{}, fmt.Errorf("corrupt outcome under %s: kind %q", fingerprint, outcome.Kind)
	}
	return outcome, nil
}

// Delete removes the outcome and its index entry.
func (s *Store) Delete(ctx context.Context, fingerprint string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(fingerprint))
	pipe.ZRem(ctx, s.indexKey(), fingerprint)
	_, err := pipe.Exec(ctx)
	return err
}

// List prunes expired index entries and returns the remaining fingerprints.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired results: %w", err)
	}

	keys, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return keys, nil
}

// Locker returns a lock manager sharing the store's client and prefix.
func (s *Store) Locker() *Locker {
	return NewLocker(s.client, s.prefix)
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

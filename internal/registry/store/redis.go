package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"nomen/internal/registry/models"
	"nomen/pkg/platform/sentinel"
)

const (
	configKey     = "registry:config"
	versionKey    = "registry:version"
	namePrefix    = "registry:name:"
	maxTxAttempts = 100
)

// Redis persists the registry in Redis for distributed deployments where
// several instances share state. Updates use WATCH-based optimistic
// transactions: a concurrent write to the same key aborts the EXEC and the
// whole load-validate-mutate-persist cycle retries.
type Redis struct {
	client *redis.Client
}

// NewRedis constructs a Redis-backed registry store. The client lifecycle
// is managed by the caller.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) InitConfig(ctx context.Context, cfg *models.Config) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal registry config: %w", err)
	}
	created, err := s.client.SetNX(ctx, configKey, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("store registry config: %w", err)
	}
	if !created {
		return fmt.Errorf("registry config already present: %w", sentinel.ErrConflict)
	}
	return nil
}

func (s *Redis) LoadConfig(ctx context.Context) (*models.Config, error) {
	payload, err := s.client.Get(ctx, configKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("registry config not found: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load registry config: %w", err)
	}
	var cfg models.Config
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal registry config: %w", err)
	}
	return &cfg, nil
}

func (s *Redis) UpdateConfig(ctx context.Context, validate func(*models.Config) error, mutate func(*models.Config)) (*models.Config, error) {
	var updated *models.Config

	apply := func(tx *redis.Tx) error {
		payload, err := tx.Get(ctx, configKey).Bytes()
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("registry config not found: %w", sentinel.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("load registry config: %w", err)
		}
		var cfg models.Config
		if err := json.Unmarshal(payload, &cfg); err != nil {
			return fmt.Errorf("unmarshal registry config: %w", err)
		}

		if err := validate(cfg.Clone()); err != nil {
			return err
		}
		mutate(&cfg)

		next, err := json.Marshal(&cfg)
		if err != nil {
			return fmt.Errorf("marshal registry config: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, configKey, next, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = &cfg
		return nil
	}

	if err := s.watchRetry(ctx, apply, configKey); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Redis) LoadVersion(ctx context.Context) (*models.VersionInfo, error) {
	payload, err := s.client.Get(ctx, versionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("version marker not found: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load version marker: %w", err)
	}
	var v models.VersionInfo
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("unmarshal version marker: %w", err)
	}
	return &v, nil
}

func (s *Redis) SaveVersion(ctx context.Context, v *models.VersionInfo) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal version marker: %w", err)
	}
	if err := s.client.Set(ctx, versionKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("save version marker: %w", err)
	}
	return nil
}

func (s *Redis) CreateName(ctx context.Context, name string, rec *models.NameRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal name record: %w", err)
	}
	created, err := s.client.SetNX(ctx, namePrefix+name, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("store name record: %w", err)
	}
	if !created {
		return fmt.Errorf("name %q already registered: %w", name, sentinel.ErrConflict)
	}
	return nil
}

func (s *Redis) FindName(ctx context.Context, name string) (*models.NameRecord, error) {
	payload, err := s.client.Get(ctx, namePrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("name %q not found: %w", name, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load name record: %w", err)
	}
	var rec models.NameRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal name record: %w", err)
	}
	return &rec, nil
}

func (s *Redis) UpdateName(ctx context.Context, name string, validate func(*models.NameRecord) error, mutate func(*models.NameRecord)) (*models.NameRecord, error) {
	key := namePrefix + name
	var updated *models.NameRecord

	apply := func(tx *redis.Tx) error {
		payload, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return fmt.Errorf("name %q not found: %w", name, sentinel.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("load name record: %w", err)
		}
		var rec models.NameRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return fmt.Errorf("unmarshal name record: %w", err)
		}

		if err := validate(rec.Clone()); err != nil {
			return err
		}
		mutate(&rec)

		next, err := json.Marshal(&rec)
		if err != nil {
			return fmt.Errorf("marshal name record: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = &rec
		return nil
	}

	if err := s.watchRetry(ctx, apply, key); err != nil {
		return nil, err
	}
	return updated, nil
}

// watchRetry runs fn under WATCH on the given keys, retrying when a
// concurrent write aborts the transaction. Errors other than the aborted
// transaction pass through unchanged, including validate callback errors.
func (s *Redis) watchRetry(ctx context.Context, fn func(tx *redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := s.client.Watch(ctx, fn, keys...)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update of %v kept conflicting after %d attempts", keys, maxTxAttempts)
}

package store

import (
	"context"
	"fmt"
	"sync"

	"nomen/internal/registry/models"
	"nomen/pkg/platform/sentinel"
)

// Memory keeps the whole registry in process memory behind one mutex.
// Suitable for tests and development; a restart loses everything.
type Memory struct {
	mu      sync.Mutex
	config  *models.Config
	version *models.VersionInfo
	records map[string]*models.NameRecord
}

// NewMemory constructs an empty in-memory registry store.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]*models.NameRecord),
	}
}

func (s *Memory) InitConfig(_ context.Context, cfg *models.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config != nil {
		return fmt.Errorf("registry config already present: %w", sentinel.ErrConflict)
	}
	s.config = cfg.Clone()
	return nil
}

func (s *Memory) LoadConfig(_ context.Context) (*models.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config == nil {
		return nil, fmt.Errorf("registry config not found: %w", sentinel.ErrNotFound)
	}
	return s.config.Clone(), nil
}

func (s *Memory) UpdateConfig(_ context.Context, validate func(*models.Config) error, mutate func(*models.Config)) (*models.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config == nil {
		return nil, fmt.Errorf("registry config not found: %w", sentinel.ErrNotFound)
	}
	if err := validate(s.config.Clone()); err != nil {
		return nil, err
	}
	next := s.config.Clone()
	mutate(next)
	s.config = next
	return next.Clone(), nil
}

func (s *Memory) LoadVersion(_ context.Context) (*models.VersionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.version == nil {
		return nil, fmt.Errorf("version marker not found: %w", sentinel.ErrNotFound)
	}
	v := *s.version
	return &v, nil
}

func (s *Memory) SaveVersion(_ context.Context, v *models.VersionInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *v
	s.version = &saved
	return nil
}

func (s *Memory) CreateName(_ context.Context, name string, rec *models.NameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.records[name]; taken {
		return fmt.Errorf("name %q already registered: %w", name, sentinel.ErrConflict)
	}
	s.records[name] = rec.Clone()
	return nil
}

func (s *Memory) FindName(_ context.Context, name string) (*models.NameRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("name %q not found: %w", name, sentinel.ErrNotFound)
	}
	return rec.Clone(), nil
}

func (s *Memory) UpdateName(_ context.Context, name string, validate func(*models.NameRecord) error, mutate func(*models.NameRecord)) (*models.NameRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("name %q not found: %w", name, sentinel.ErrNotFound)
	}
	if err := validate(rec.Clone()); err != nil {
		return nil, err
	}
	next := rec.Clone()
	mutate(next)
	s.records[name] = next
	return next.Clone(), nil
}

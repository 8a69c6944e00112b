package property

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// SeedFile is the on-disk format of a property list.
type SeedFile struct {
	UpdatedAt  string     `yaml:"updated_at"`
	Properties []Property `yaml:"properties"`
}

// LoadSeedFile reads a property list from YAML.
func LoadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse property file: %w", err)
	}
	return &seed, nil
}

// SaveSeedFile writes a property list as YAML, creating parent directories.
func SaveSeedFile(seed *SeedFile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := yaml.Marshal(seed)
	if err != nil {
		return fmt.Errorf("failed to marshal properties: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write property file: %w", err)
	}
	return nil
}

// MemoryRepository serves properties from memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]Property
}

func NewMemoryRepository(props ...Property) *MemoryRepository {
	r := &MemoryRepository{items: make(map[string]Property, len(props))}
	for _, p := range props {
		r.items[p.ID] = p
	}
	return r
}

// NewMemoryRepositoryFromFile loads path; an empty path yields an empty repository.
func NewMemoryRepositoryFromFile(path string) (*MemoryRepository, error) {
	if path == "" {
		return NewMemoryRepository(), nil
	}
	seed, err := LoadSeedFile(path)
	if err != nil {
		return nil, err
	}
	for i, p := range seed.Properties {
		if p.ID == "" {
			return nil, fmt.Errorf("property %d in %s has no id", i, path)
		}
	}
	return NewMemoryRepository(seed.Properties...), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return Property{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

// List returns every property ordered by id.
func (r *MemoryRepository) List() []Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Property, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MergeSeeds combines property lists by id; entries in later lists replace
// earlier ones. The result is ordered by id.
func MergeSeeds(lists ...[]Property) []Property {
	r := NewMemoryRepository()
	for _, list := range lists {
		for _, p := range list {
			if p.ID == "" {
				continue
			}
			r.items[p.ID] = p
		}
	}
	return r.List()
}

package cache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store front-ends the two tiers: reads check memory first and promote disk
// hits, writes land in both. It satisfies the pronunciation store interface
// the grapheme-to-phoneme engine consumes.
type Store struct {
	memory *Memory
	disk   *Disk
}

// NewStore builds a two-tier store from config. An empty DiskPath defaults
// to the user cache directory. The caller's config is not modified.
func NewStore(config *Config) (*Store, error) {
	var cfg Config
	if config == nil {
		cfg = *DefaultConfig()
	} else {
		cfg = *config
	}
	if cfg.DiskPath == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("unable to locate cache directory: %w", err)
		}
		cfg.DiskPath = filepath.Join(base, "annotate", "pronunciations")
	}

	disk, err := NewDisk(cfg.DiskPath, cfg.DiskCapacity, cfg.CompressionLevel)
	if err != nil {
		return nil, fmt.Errorf("unable to open disk cache: %w", err)
	}

	return &Store{
		memory: NewMemory(cfg.MemoryCapacity),
		disk:   disk,
	}, nil
}

// Get checks memory, then disk. Disk hits are promoted to memory.
func (s *Store) Get(key string) ([]byte, bool) {
	if data, ok := s.memory.Get(key); ok {
		return data, true
	}
	if data, ok := s.disk.Get(key); ok {
		_ = s.memory.Put(key, data)
		return data, true
	}
	return nil, false
}

// Put writes to both tiers. A full memory tier is not an error; the disk
// tier is the durable one.
func (s *Store) Put(key string, value []byte) error {
	_ = s.memory.Put(key, value)
	return s.disk.Put(key, value)
}

// Contains reports whether either tier holds key.
func (s *Store) Contains(key string) bool {
	return s.memory.Contains(key) || s.disk.Contains(key)
}

// Clear empties both tiers.
func (s *Store) Clear() error {
	s.memory.Clear()
	return s.disk.Clear()
}

// Stats returns per-tier counters, memory first.
func (s *Store) Stats() (Stats, Stats) {
	return s.memory.Stats(), s.disk.Stats()
}

// Close persists the disk index.
func (s *Store) Close() error {
	return s.disk.Close()
}

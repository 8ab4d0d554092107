package cache

import "errors"

// Cache errors.
var (
	// ErrItemTooLarge is returned when an entry exceeds the cache capacity.
	ErrItemTooLarge = errors.New("item too large for cache")

	// ErrCacheCorrupted is returned when persisted cache data cannot be read.
	ErrCacheCorrupted = errors.New("cache data corrupted")
)

// Stats holds cache performance counters.
type Stats struct {
	Capacity  int64
	Size      int64
	ItemCount int64

	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Config sizes the two cache tiers.
type Config struct {
	// MemoryCapacity bounds the in-memory tier, in bytes.
	MemoryCapacity int64

	// DiskCapacity bounds the on-disk tier, in bytes.
	DiskCapacity int64

	// DiskPath is the directory holding cache files and the index.
	DiskPath string

	// CompressionLevel is the zstd level for disk entries; 0 disables
	// compression.
	CompressionLevel int
}

// DefaultConfig returns sensible tier sizes for a pronunciation cache.
func DefaultConfig() *Config {
	return &Config{
		MemoryCapacity:   16 * 1024 * 1024,
		DiskCapacity:     256 * 1024 * 1024,
		CompressionLevel: 3,
	}
}

package cache

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sys/unix"
)

// Disk is the persistent tier. Each entry lives in its own file, optionally
// zstd-compressed; a gob index maps keys to files. Index reads and writes
// take an advisory file lock so concurrent processes sharing a cache
// directory do not clobber each other.
type Disk struct {
	basePath string
	capacity int64
	size     int64

	encoder *zstd.Encoder
	decoder *zstd.Decoder

	index map[string]*diskEntry

	mu sync.Mutex

	stats Stats
}

type diskEntry struct {
	Key        string
	FilePath   string
	Size       int64
	Timestamp  time.Time
	LastAccess time.Time
	Compressed bool
}

// NewDisk creates the disk tier rooted at basePath, creating the directory
// when needed and loading any existing index.
func NewDisk(basePath string, capacity int64, compressionLevel int) (*Disk, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create cache directory: %w", err)
	}

	d := &Disk{
		basePath: basePath,
		capacity: capacity,
		index:    make(map[string]*diskEntry),
		stats:    Stats{Capacity: capacity},
	}

	if compressionLevel > 0 {
		var err error
		d.encoder, err = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(compressionLevel)))
		if err != nil {
			return nil, fmt.Errorf("unable to create zstd encoder: %w", err)
		}
		d.decoder, err = zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("unable to create zstd decoder: %w", err)
		}
	}

	if err := d.loadIndex(); err != nil {
		// A broken index only costs cached entries.
		d.index = make(map[string]*diskEntry)
	}
	for _, entry := range d.index {
		d.size += entry.Size
	}

	return d, nil
}

// Get reads a value from disk, decompressing when needed. Entries whose
// backing file is missing or corrupt are dropped from the index.
func (d *Disk) Get(key string) ([]byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	entry, ok := d.index[key]
	if !ok {
		d.stats.Misses++
		return nil, false
	}

	data, err := os.ReadFile(entry.FilePath)
	if err != nil {
		d.drop(entry)
		d.stats.Misses++
		return nil, false
	}

	if entry.Compressed && d.decoder != nil {
		data, err = d.decoder.DecodeAll(data, nil)
		if err != nil {
			d.drop(entry)
			d.stats.Misses++
			return nil, false
		}
	}

	entry.LastAccess = time.Now()
	d.stats.Hits++
	return data, true
}

// Put writes a value to its own file and records it in the index.
func (d *Disk) Put(key string, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data := value
	compressed := false
	if d.encoder != nil && len(value) > 64 {
		if c := d.encoder.EncodeAll(value, nil); len(c) < len(value) {
			data, compressed = c, true
		}
	}

	size := int64(len(data))
	if size > d.capacity {
		return ErrItemTooLarge
	}

	if existing, ok := d.index[key]; ok {
		d.drop(existing)
	}
	for d.size+size > d.capacity && len(d.index) > 0 {
		d.evictOldest()
	}

	path := d.entryPath(key)
	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("unable to write cache file: %w", err)
	}

	now := time.Now()
	d.index[key] = &diskEntry{
		Key:        key,
		FilePath:   path,
		Size:       size,
		Timestamp:  now,
		LastAccess: now,
		Compressed: compressed,
	}
	d.size += size
	return nil
}

// Contains reports whether key is indexed.
func (d *Disk) Contains(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.index[key]
	return ok
}

// RemoveOlderThan deletes entries written before cutoff and reports how many
// were removed.
func (d *Disk) RemoveOlderThan(cutoff time.Time) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for _, entry := range d.index {
		if entry.Timestamp.Before(cutoff) {
			d.drop(entry)
			removed++
		}
	}
	return removed
}

// Clear removes every entry and persists the empty index.
func (d *Disk) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, entry := range d.index {
		os.Remove(entry.FilePath)
	}
	d.index = make(map[string]*diskEntry)
	d.size = 0
	return d.saveIndex()
}

// Size returns the tier size in bytes.
func (d *Disk) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.size
}

// Stats returns a snapshot of the tier's counters.
func (d *Disk) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	stats := d.stats
	stats.Size = d.size
	stats.ItemCount = int64(len(d.index))
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	return stats
}

// Close persists the index.
func (d *Disk) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.saveIndex()
}

// drop removes an entry's file and index record. Caller holds the lock.
func (d *Disk) drop(entry *diskEntry) {
	os.Remove(entry.FilePath)
	delete(d.index, entry.Key)
	d.size -= entry.Size
}

// evictOldest removes the least recently accessed entry. Caller holds the
// lock.
func (d *Disk) evictOldest() {
	var oldest *diskEntry
	for _, entry := range d.index {
		if oldest == nil || entry.LastAccess.Before(oldest.LastAccess) {
			oldest = entry
		}
	}
	if oldest != nil {
		d.drop(oldest)
		d.stats.Evictions++
	}
}

func (d *Disk) entryPath(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(d.basePath, hex.EncodeToString(hash[:16])+".cache")
}

func (d *Disk) indexPath() string {
	return filepath.Join(d.basePath, "pronunciations.index")
}

func (d *Disk) loadIndex() error {
	unlock, err := d.lockIndex()
	if err != nil {
		return err
	}
	defer unlock()

	f, err := os.Open(d.indexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close() //nolint:errcheck

	if err := gob.NewDecoder(f).Decode(&d.index); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheCorrupted, err)
	}
	return nil
}

func (d *Disk) saveIndex() error {
	unlock, err := d.lockIndex()
	if err != nil {
		return err
	}
	defer unlock()

	tempPath := d.indexPath() + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return err
	}

	err = gob.NewEncoder(f).Encode(d.index)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return err
	}
	return os.Rename(tempPath, d.indexPath())
}

// lockIndex takes an exclusive advisory lock on the index lock file and
// returns the release function.
func (d *Disk) lockIndex() (func(), error) {
	f, err := os.OpenFile(filepath.Join(d.basePath, "index.lock"), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close() //nolint:errcheck
		return nil, err
	}
	return func() {
		unix.Flock(int(f.Fd()), unix.LOCK_UN) //nolint:errcheck
		f.Close()                             //nolint:errcheck
	}, nil
}

// writeAtomic writes data through a temp file and rename.
func writeAtomic(path string, data []byte) error {
	tempPath := path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return err
	}
	return os.Rename(tempPath, path)
}

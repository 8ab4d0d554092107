package cache

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMemoryPutGet(t *testing.T) {
	c := NewMemory(1024)

	if err := c.Put("hello", []byte("HH AH0 L OW1")); err != nil {
		t.Fatal(err)
	}
	got, ok := c.Get("hello")
	if !ok || string(got) != "HH AH0 L OW1" {
		t.Errorf("Get = %q, %v", got, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
}

func TestMemoryEvictsLRU(t *testing.T) {
	c := NewMemory(30)

	for i := 0; i < 3; i++ {
		if err := c.Put(fmt.Sprintf("k%d", i), make([]byte, 10)); err != nil {
			t.Fatal(err)
		}
	}
	// Touch k0 so k1 is the eviction candidate.
	if _, ok := c.Get("k0"); !ok {
		t.Fatal("k0 missing before eviction")
	}

	if err := c.Put("k3", make([]byte, 10)); err != nil {
		t.Fatal(err)
	}
	if c.Contains("k1") {
		t.Error("k1 should have been evicted")
	}
	if !c.Contains("k0") || !c.Contains("k2") || !c.Contains("k3") {
		t.Error("recently used entries were evicted")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("evictions = %d, want 1", got)
	}
}

func TestMemoryRejectsOversized(t *testing.T) {
	c := NewMemory(10)
	if err := c.Put("big", make([]byte, 11)); !errors.Is(err, ErrItemTooLarge) {
		t.Errorf("Put oversized = %v, want ErrItemTooLarge", err)
	}
}

func TestDiskRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d, err := NewDisk(dir, 1<<20, 3)
	if err != nil {
		t.Fatal(err)
	}

	value := bytes.Repeat([]byte("W ER1 L D "), 20)
	if err := d.Put("world", value); err != nil {
		t.Fatal(err)
	}
	got, ok := d.Get("world")
	if !ok || !bytes.Equal(got, value) {
		t.Errorf("Get after Put: ok=%v len=%d want=%d", ok, len(got), len(value))
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}

	// A fresh instance sees the persisted index.
	d2, err := NewDisk(dir, 1<<20, 3)
	if err != nil {
		t.Fatal(err)
	}
	got, ok = d2.Get("world")
	if !ok || !bytes.Equal(got, value) {
		t.Error("persisted entry missing after reopen")
	}
}

func TestDiskRemoveOlderThan(t *testing.T) {
	d, err := NewDisk(t.TempDir(), 1<<20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Put("old", []byte("x")); err != nil {
		t.Fatal(err)
	}

	if removed := d.RemoveOlderThan(time.Now().Add(-time.Hour)); removed != 0 {
		t.Errorf("removed %d fresh entries", removed)
	}
	if removed := d.RemoveOlderThan(time.Now().Add(time.Hour)); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if d.Contains("old") {
		t.Error("entry still present after removal")
	}
}

func TestStorePromotesDiskHits(t *testing.T) {
	store, err := NewStore(&Config{
		MemoryCapacity:   1024,
		DiskCapacity:     1 << 20,
		DiskPath:         t.TempDir(),
		CompressionLevel: 0,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Seed the disk tier directly so the first Get has to miss memory.
	if err := store.disk.Put("three", []byte("TH R IY1")); err != nil {
		t.Fatal(err)
	}
	if store.memory.Contains("three") {
		t.Fatal("memory tier unexpectedly warm")
	}

	got, ok := store.Get("three")
	if !ok || string(got) != "TH R IY1" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
	if !store.memory.Contains("three") {
		t.Error("disk hit was not promoted to memory")
	}
}

func TestNewStoreLeavesConfigUntouched(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cfg := &Config{
		MemoryCapacity:   1024,
		DiskCapacity:     1 << 20,
		CompressionLevel: 0,
	}
	if _, err := NewStore(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.DiskPath != "" {
		t.Errorf("NewStore wrote defaulted DiskPath %q into the caller's config", cfg.DiskPath)
	}
}

func TestStorePutWritesBothTiers(t *testing.T) {
	store, err := NewStore(&Config{
		MemoryCapacity:   1024,
		DiskCapacity:     1 << 20,
		DiskPath:         t.TempDir(),
		CompressionLevel: 0,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Put("hello", []byte("HH AH0 L OW1")); err != nil {
		t.Fatal(err)
	}
	if !store.memory.Contains("hello") || !store.disk.Contains("hello") {
		t.Error("Put should land in both tiers")
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if store.Contains("hello") {
		t.Error("entry survived Clear")
	}
}

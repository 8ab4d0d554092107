// Package cache provides a two-level pronunciation cache: an in-memory LRU
// front and a persistent zstd-compressed disk store, so repeated words skip
// grapheme-to-phoneme conversion across runs.
package cache

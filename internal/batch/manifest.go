// Package batch runs the annotator over a manifest of utterances with a
// bounded worker pool, keeping per-utterance failures from aborting the run.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyManifest is returned when a manifest holds no utterances.
var ErrEmptyManifest = errors.New("manifest holds no utterances")

// Utterance is one manifest row: an audio file and its transcript.
type Utterance struct {
	AudioPath string
	Text      string
}

// ReadManifest parses a tab-separated manifest: one utterance per line,
// audio path then transcript. Blank lines and lines starting with # are
// skipped.
func ReadManifest(r io.Reader) ([]Utterance, error) {
	var utterances []Utterance

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		path, text, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("manifest line %d: expected audio path and transcript separated by a tab", lineNo)
		}
		path = strings.TrimSpace(path)
		text = strings.TrimSpace(text)
		if path == "" || text == "" {
			return nil, fmt.Errorf("manifest line %d: empty audio path or transcript", lineNo)
		}
		utterances = append(utterances, Utterance{AudioPath: path, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read manifest: %w", err)
	}
	if len(utterances) == 0 {
		return nil, ErrEmptyManifest
	}
	return utterances, nil
}

// ReadManifestFile opens and parses a manifest file.
func ReadManifestFile(path string) ([]Utterance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open manifest: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return ReadManifest(f)
}

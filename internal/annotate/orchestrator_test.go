package annotate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prosodylab/annotate/internal/syllable"
)

// fakeG2P converts word by word from a fixed lexicon and fails on anything
// it does not know.
type fakeG2P struct {
	lexicon map[string][]string
}

func (f *fakeG2P) Convert(text string) ([]string, error) {
	var phones []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		ph, ok := f.lexicon[word]
		if !ok {
			return nil, fmt.Errorf("word not in lexicon: %q", word)
		}
		phones = append(phones, ph...)
	}
	return phones, nil
}

// fakeNormalizer records whether it ran and spells out digits verbatim.
type fakeNormalizer struct {
	called bool
	fail   bool
	word   string
}

func (f *fakeNormalizer) Normalize(text string) (string, error) {
	f.called = true
	if f.fail {
		return "", errors.New("normalizer unavailable")
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, text) + " " + f.word, nil
}

func testG2P() *fakeG2P {
	return &fakeG2P{lexicon: map[string][]string{
		"hello": {"HH", "AH0", "L", "OW1"},
		"world": {"W", "ER1", "L", "D"},
		"three": {"TH", "R", "IY1"},
	}}
}

func newTestOrchestrator(g2p GraphemeToPhoneme, cjk, other TextNormalizer) *Orchestrator {
	return NewOrchestrator(syllable.NewDefaultTokenizer(), g2p, cjk, other, nil)
}

func TestTextToSyllablesMixedScript(t *testing.T) {
	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, &fakeNormalizer{})

	info := orch.TextToSyllables("你好Hello世界World")

	want := "你 好 HH-AH0 L-OW1 世 界 W-ER1-L-D"
	if info.Syllables != want {
		t.Errorf("Syllables = %q, want %q", info.Syllables, want)
	}
	if info.SyllableNum != 7 {
		t.Errorf("SyllableNum = %d, want 7", info.SyllableNum)
	}
	if info.NormalizedText != "你好Hello世界World" {
		t.Errorf("NormalizedText = %q, want input unchanged", info.NormalizedText)
	}
}

func TestTextToSyllablesPunctuationStripped(t *testing.T) {
	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, &fakeNormalizer{})

	info := orch.TextToSyllables("Hello, world!")

	if info.Syllables != "HH-AH0 L-OW1 W-ER1-L-D" {
		t.Errorf("Syllables = %q", info.Syllables)
	}
	if info.SyllableNum != 3 {
		t.Errorf("SyllableNum = %d, want 3", info.SyllableNum)
	}
}

func TestTextToSyllablesNormalizationDispatch(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCJK   bool
		wantOther bool
	}{
		{
			name:      "no digits skips normalization",
			text:      "hello world",
			wantCJK:   false,
			wantOther: false,
		},
		{
			name:      "digits without CJK use the other-locale normalizer",
			text:      "hello 3",
			wantCJK:   false,
			wantOther: true,
		},
		{
			name:    "digits with any CJK character use the CJK normalizer",
			text:    "hello 3 你",
			wantCJK: true,
			// Mixed text is normalized entirely by one locale.
			wantOther: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cjk := &fakeNormalizer{word: "三"}
			other := &fakeNormalizer{word: "three"}
			orch := newTestOrchestrator(testG2P(), cjk, other)

			orch.TextToSyllables(tt.text)

			if cjk.called != tt.wantCJK {
				t.Errorf("cjk normalizer called = %v, want %v", cjk.called, tt.wantCJK)
			}
			if other.called != tt.wantOther {
				t.Errorf("other normalizer called = %v, want %v", other.called, tt.wantOther)
			}
		})
	}
}

func TestTextToSyllablesNormalizerFailureFallsBack(t *testing.T) {
	other := &fakeNormalizer{fail: true}
	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, other)

	info := orch.TextToSyllables("hello 3")

	if !other.called {
		t.Fatal("expected the normalizer to be invoked")
	}
	// Raw text survives; the digit segment simply fails G2P and is dropped.
	if info.NormalizedText != "hello 3" {
		t.Errorf("NormalizedText = %q, want raw text", info.NormalizedText)
	}
}

func TestTextToSyllablesSegmentFaultIsolation(t *testing.T) {
	// The non-CJK segment is unknown to the fake G2P and gets dropped; the
	// CJK segments still produce output.
	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, &fakeNormalizer{})

	info := orch.TextToSyllables("你好unpronounceable世界")

	if info.Syllables != "你 好 世 界" {
		t.Errorf("Syllables = %q, want only the CJK characters", info.Syllables)
	}
	if info.SyllableNum != 4 {
		t.Errorf("SyllableNum = %d, want 4", info.SyllableNum)
	}
}

func TestTextToSyllablesEmptyText(t *testing.T) {
	orch := newTestOrchestrator(testG2P(), &fakeNormalizer{}, &fakeNormalizer{})

	info := orch.TextToSyllables("")
	if info.SyllableNum != 0 || info.Syllables != "" {
		t.Errorf("empty text produced %+v", info)
	}
}

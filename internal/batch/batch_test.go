package batch

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prosodylab/annotate/internal/annotate"
)

func TestReadManifest(t *testing.T) {
	input := strings.Join([]string{
		"# corpus batch one",
		"clips/a.wav\thello world",
		"",
		"clips/b.wav\t你好世界",
	}, "\n")

	got, err := ReadManifest(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("parsed %d utterances, want 2", len(got))
	}
	if got[0].AudioPath != "clips/a.wav" || got[0].Text != "hello world" {
		t.Errorf("first utterance = %+v", got[0])
	}
	if got[1].Text != "你好世界" {
		t.Errorf("second utterance = %+v", got[1])
	}
}

func TestReadManifestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing tab", "clips/a.wav hello"},
		{"empty transcript", "clips/a.wav\t"},
		{"only comments", "# nothing here"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadManifest(strings.NewReader(tt.input)); err == nil {
				t.Error("want error")
			}
		})
	}
}

// countingAnnotator fails on a marked path and counts concurrent calls.
type countingAnnotator struct {
	failPath string
	active   atomic.Int32
	peak     atomic.Int32
}

func (a *countingAnnotator) Annotate(audioPath, text string) (*annotate.Annotation, error) {
	n := a.active.Add(1)
	defer a.active.Add(-1)
	for {
		p := a.peak.Load()
		if n <= p || a.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if audioPath == a.failPath {
		return nil, errors.New("unreadable audio")
	}
	return &annotate.Annotation{Text: text, SyllableNum: len(text)}, nil
}

func TestRunKeepsOrderAndIsolatesFailures(t *testing.T) {
	utterances := []Utterance{
		{AudioPath: "a.wav", Text: "one"},
		{AudioPath: "broken.wav", Text: "two"},
		{AudioPath: "c.wav", Text: "three"},
	}

	ann := &countingAnnotator{failPath: "broken.wav"}
	runner := NewRunner(ann, 2, nil)

	results, err := runner.Run(context.Background(), utterances)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	for i, res := range results {
		if res.Index != i || res.AudioPath != utterances[i].AudioPath {
			t.Errorf("result %d out of order: %+v", i, res)
		}
	}
	if results[1].Err == nil {
		t.Error("broken utterance should carry its error")
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("healthy utterances should not carry errors")
	}
	if results[2].Annotation.Text != "three" {
		t.Errorf("annotation text = %q", results[2].Annotation.Text)
	}
}

func TestRunHonorsWorkerLimit(t *testing.T) {
	utterances := make([]Utterance, 16)
	for i := range utterances {
		utterances[i] = Utterance{AudioPath: "x.wav", Text: "t"}
	}

	ann := &countingAnnotator{}
	runner := NewRunner(ann, 2, nil)
	if _, err := runner.Run(context.Background(), utterances); err != nil {
		t.Fatal(err)
	}
	if peak := ann.peak.Load(); peak > 2 {
		t.Errorf("peak concurrency = %d, want at most 2", peak)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(&countingAnnotator{}, 2, nil)
	_, err := runner.Run(ctx, []Utterance{{AudioPath: "a.wav", Text: "one"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run on cancelled context = %v, want context.Canceled", err)
	}
}

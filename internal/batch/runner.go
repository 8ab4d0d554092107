package batch

import (
	"context"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/prosodylab/annotate/internal/annotate"
)

// Annotator produces one annotation record per utterance.
type Annotator interface {
	Annotate(audioPath, text string) (*annotate.Annotation, error)
}

// Result pairs an utterance with its annotation or failure. Index is the
// utterance's position in the manifest; Annotation is nil when Err is set.
type Result struct {
	Index      int
	AudioPath  string
	Annotation *annotate.Annotation
	Err        error
}

// Runner fans utterances out to a bounded pool of workers.
type Runner struct {
	annotator Annotator
	workers   int
	logger    *log.Logger
}

// NewRunner creates a runner. workers below 1 is treated as 1; a nil logger
// falls back to the default.
func NewRunner(annotator Annotator, workers int, logger *log.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{annotator: annotator, workers: workers, logger: logger}
}

// Run annotates every utterance and returns results in manifest order. A
// failing utterance is recorded in its Result and logged; it does not stop
// the run. Only context cancellation aborts early.
func (r *Runner) Run(ctx context.Context, utterances []Utterance) ([]Result, error) {
	results := make([]Result, len(utterances))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, utt := range utterances {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ann, err := r.annotator.Annotate(utt.AudioPath, utt.Text)
			if err != nil {
				r.logger.Warn("annotation failed", "audio", utt.AudioPath, "err", err)
			}
			results[i] = Result{
				Index:      i,
				AudioPath:  utt.AudioPath,
				Annotation: ann,
				Err:        err,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

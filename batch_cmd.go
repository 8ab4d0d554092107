package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prosodylab/annotate/internal/batch"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch MANIFEST",
	Short: "Annotate a manifest of utterances",
	Long: paragraph(
		fmt.Sprintf("\nAnnotate every utterance in a %s: a tab-separated file with one audio path and transcript per line. Records are written as JSON lines in manifest order; utterances that fail are logged and skipped.", keyword("manifest")),
	),
	Example: paragraph("annotate batch corpus.tsv\nannotate batch corpus.tsv --workers 8 > records.jsonl"),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		utterances, err := batch.ReadManifestFile(args[0])
		if err != nil {
			return err
		}

		p, err := buildPipeline()
		if err != nil {
			return err
		}
		defer p.close() //nolint:errcheck

		workers := p.config.Workers
		if cmd.Flags().Changed("workers") {
			workers = batchWorkers
		}

		runner := batch.NewRunner(p.annotator, workers, log.Default())
		results, err := runner.Run(cmd.Context(), utterances)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
				continue
			}
			if err := enc.Encode(res.Annotation); err != nil {
				return fmt.Errorf("unable to write annotation: %w", err)
			}
		}
		if failed > 0 {
			log.Warn("Some utterances failed", "failed", failed, "total", len(results))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "j", 4, "concurrent annotation workers")
}

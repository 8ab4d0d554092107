// Package main provides the entry point for the annotate CLI, which turns
// speech recordings and their transcripts into per-utterance annotation
// records for corpus pipelines.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/prosodylab/annotate/internal/annotate"
	"github.com/prosodylab/annotate/internal/audio"
	"github.com/prosodylab/annotate/internal/cache"
	"github.com/prosodylab/annotate/internal/g2p"
	"github.com/prosodylab/annotate/internal/norm"
	"github.com/prosodylab/annotate/internal/syllable"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile   string
	text         string
	textFile     string
	prettyOutput bool

	rootCmd = &cobra.Command{
		Use:   "annotate AUDIO_FILE",
		Short: "Annotate speech recordings with pitch, speed, and syllables",
		Long: paragraph(
			fmt.Sprintf("\nCompute %s for an utterance: pitch statistics, speaking rate, and the syllable stream of its transcript.", keyword("annotation records")),
		),
		Example: paragraph("annotate clip.wav --text \"hello world\"\nannotate clip.wav --text-file clip.txt"),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.ExactArgs(1),
		RunE:             execute,
	}
)

// pipeline bundles the wired annotator with the resources it owns.
type pipeline struct {
	annotator *annotate.Annotator
	config    annotate.Config
	store     *cache.Store
}

// close releases pipeline resources, persisting the pronunciation cache.
func (p *pipeline) close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

// buildPipeline wires the full annotation pipeline from configuration.
func buildPipeline() (*pipeline, error) {
	cfg, err := annotate.LoadConfigFromViper()
	if err != nil {
		return nil, err
	}

	store, err := cache.NewStore(&cache.Config{
		MemoryCapacity:   16 * 1024 * 1024,
		DiskCapacity:     int64(cfg.CacheMaxSizeMB) * 1024 * 1024,
		DiskPath:         cfg.CacheDir,
		CompressionLevel: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open pronunciation cache: %w", err)
	}

	logger := log.Default()
	orch := annotate.NewOrchestrator(
		syllable.NewDefaultTokenizer(),
		g2p.New(store),
		norm.NewChinese(),
		norm.NewEnglish(),
		logger,
	)
	annotator := annotate.NewAnnotator(
		cfg,
		audio.NewLoader(),
		audio.NewTrimmer(cfg.TrimThresholdDB),
		audio.NewEstimator(),
		orch,
		logger,
	)
	return &pipeline{annotator: annotator, config: cfg, store: store}, nil
}

// readTranscript resolves the transcript from --text or --text-file.
func readTranscript(audioPath string) (string, error) {
	if text != "" && textFile != "" {
		return "", fmt.Errorf("--text and --text-file are mutually exclusive")
	}
	if text != "" {
		return text, nil
	}

	path := textFile
	if path == "" {
		// Default to a transcript file next to the audio.
		path = strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".txt"
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read transcript: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// writeAnnotation emits one annotation record as JSON. Pretty printing is on
// for terminals unless overridden.
func writeAnnotation(ann *annotate.Annotation) error {
	enc := json.NewEncoder(os.Stdout)
	if prettyOutput {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(ann); err != nil {
		return fmt.Errorf("unable to write annotation: %w", err)
	}
	return nil
}

func execute(cmd *cobra.Command, args []string) error {
	audioPath := args[0]

	transcript, err := readTranscript(audioPath)
	if err != nil {
		return err
	}

	p, err := buildPipeline()
	if err != nil {
		return err
	}
	defer p.close() //nolint:errcheck

	ann, err := p.annotator.Annotate(audioPath, transcript)
	if err != nil {
		return err
	}
	return writeAnnotation(ann)
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringVarP(&text, "text", "t", "", "utterance transcript")
	rootCmd.Flags().StringVar(&textFile, "text-file", "", "file holding the utterance transcript")
	rootCmd.Flags().BoolVar(&prettyOutput, "pretty", term.IsTerminal(int(os.Stdout.Fd())), "indent JSON output")

	// Config bindings
	_ = viper.BindPFlag("pretty", rootCmd.Flags().Lookup("pretty"))

	viper.SetDefault("annotate.sample_rate", 16000)
	viper.SetDefault("annotate.normalize_volume", true)
	viper.SetDefault("annotate.trim_threshold_db", 40.0)
	viper.SetDefault("annotate.workers", 4)
	viper.SetDefault("annotate.cache_dir", "")
	viper.SetDefault("annotate.cache_max_size", 100)

	rootCmd.AddCommand(batchCmd, phonesCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "annotate")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "annotate")}, dirs...)
	}

	if c := os.Getenv("ANNOTATE_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("annotate")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("annotate")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
		return
	}

	configFile = filepath.Join(dirs[0], "annotate.yml")
}

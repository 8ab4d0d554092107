package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prosodylab/annotate/internal/g2p"
	"github.com/prosodylab/annotate/internal/syllable"
)

var (
	phoneCounts string
	fromText    bool
)

var phonesCmd = &cobra.Command{
	Use:   "phones PHONE...",
	Short: "Syllabify a phoneme sequence",
	Long: paragraph(
		fmt.Sprintf("\nSplit an %s phoneme sequence into syllables. With --counts, the stream is first sliced into words by per-word phone counts; with --text, the arguments are words converted to phonemes first.", keyword("ARPABET")),
	),
	Example: paragraph("annotate phones W AH1 N D ER0 F AH0 L\nannotate phones --counts 4,4 HH AH0 L OW1 W ER1 L D\nannotate phones --text hello world"),
	Args:    cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		tok := syllable.NewDefaultTokenizer()

		if fromText {
			return syllabifyText(tok, strings.Join(args, " "))
		}
		if phoneCounts != "" {
			return syllabifyAligned(tok, args, phoneCounts)
		}

		syls, err := tok.Tokenize(args)
		if err != nil {
			return err
		}
		for _, syl := range syls {
			fmt.Println(strings.Join(syl, " "))
		}
		return nil
	},
}

// syllabifyText converts words to phonemes first, then syllabifies per word.
func syllabifyText(tok syllable.Tokenizer, text string) error {
	words, err := g2p.New(nil).ConvertWords(text)
	if err != nil {
		return err
	}

	all, err := syllable.TokenizeAll(tok, words)
	if err != nil {
		return err
	}
	for _, syls := range all {
		parts := make([]string, 0, len(syls))
		for _, syl := range syls {
			parts = append(parts, strings.Join(syl, " "))
		}
		fmt.Println(strings.Join(parts, " . "))
	}
	return nil
}

// syllabifyAligned slices the phone stream by per-word counts before
// syllabifying.
func syllabifyAligned(tok syllable.Tokenizer, phones []string, countsArg string) error {
	fields := strings.Split(countsArg, ",")
	counts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("invalid phone count %q: %w", f, err)
		}
		counts = append(counts, n)
	}

	syls, sylCounts, err := syllable.SentenceSyllables(tok, phones, counts)
	if err != nil {
		return err
	}
	for i, syl := range syls {
		fmt.Printf("%s\t%d\n", syl, sylCounts[i])
	}
	return nil
}

func init() {
	phonesCmd.Flags().StringVar(&phoneCounts, "counts", "", "comma-separated per-word phone counts")
	phonesCmd.Flags().BoolVar(&fromText, "text", false, "treat arguments as words, not phonemes")
}

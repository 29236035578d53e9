package cmd

import (
	"fmt"

	"github.com/pders01/slidedraft/internal/segment"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <transcript.json>",
	Short: "Build the slide timeline from a transcript",
	Long: `Read a transcript JSON file produced by the transcription step and
group its segments into slides using pause and sentence boundaries.

An existing timeline is replaced; the previous state is checkpointed
first, so the replacement is undoable.

Example:
  slidedraft ingest recordings/talk.json`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	transcript, err := segment.LoadTranscript(args[0])
	if err != nil {
		return err
	}

	if err := sess.Checkpoint(fmt.Sprintf("ingest transcript %s", args[0])); err != nil {
		return err
	}

	globalStyle := sess.Deck.GlobalStyle
	sess.Deck = segment.Build(transcript.Segments)
	sess.Deck.GlobalStyle = globalStyle

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Ingested %d segment(s) into %d slide(s)\n",
		len(transcript.Segments), len(sess.Deck.Slides))
	if transcript.Language != "" {
		fmt.Printf("  Language: %s\n", transcript.Language)
	}
	if transcript.Duration > 0 {
		fmt.Printf("  Duration: %.1fs\n", transcript.Duration)
	}
	return nil
}

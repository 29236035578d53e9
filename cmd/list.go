package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"
)

var (
	listJSON bool
	listToon bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the slides in the timeline",
	Long: `Show the summary view of every slide: id, order, time range, title,
body snippet, and whether a background is set.

Examples:
  slidedraft list
  slidedraft list --json
  slidedraft list --toon`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listToon, "toon", false, "Output in LLM-friendly toon format")
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	summaries := sess.Deck.Summaries()

	if listJSON {
		output, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if listToon {
		output, err := gotoon.Encode(summaries)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	if len(summaries) == 0 {
		fmt.Println("No slides yet (run: slidedraft ingest <transcript.json>)")
		return nil
	}

	fmt.Printf("%d slide(s):\n\n", len(summaries))
	for _, s := range summaries {
		background := ""
		if s.HasBackground {
			background = "  [bg]"
		}
		fmt.Printf("%3d. %s  %-16s %s%s\n", s.Order, s.ID, s.TimeRange, s.Title, background)
		if s.BodySnippet != "" {
			fmt.Printf("     %s\n", s.BodySnippet)
		}
	}
	return nil
}

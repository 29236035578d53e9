package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <slide-id> <at-time>",
	Short: "Split a slide in two at a point in time",
	Long: `Cut a slide at the given time (seconds). The time must fall strictly
inside the slide's range; the boundaries themselves are not valid cut
points. The body text is divided between the halves at a sentence
boundary.

Example:
  slidedraft split 3fa1b2c4 42.5`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	atTime, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", args[1], err)
	}

	if err := sess.Checkpoint(fmt.Sprintf("split slide %s at %.2fs", args[0], atTime)); err != nil {
		return err
	}

	original, created, ok := sess.Deck.Split(args[0], atTime)
	if !ok {
		if sess.Deck.Get(args[0]) == nil {
			return fmt.Errorf("no slide with id: %s", args[0])
		}
		return fmt.Errorf("split time %.2fs is not strictly inside the slide's range", atTime)
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Split slide %s\n", original.ID)
	fmt.Printf("  %s  %.2fs - %.2fs\n", original.ID, original.StartTime, original.EndTime)
	fmt.Printf("  %s  %.2fs - %.2fs (new)\n", created.ID, created.StartTime, created.EndTime)
	return nil
}

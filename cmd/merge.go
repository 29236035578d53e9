package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <slide-id> <slide-id>",
	Short: "Merge two slides into one",
	Long: `Absorb one slide into the other. Whichever comes first in sequence
order survives, keeping its start time and taking the other's end time;
bodies and speaker notes are joined. Argument order does not matter.

Example:
  slidedraft merge 3fa1b2c4 9e8d7c6b`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if err := sess.Checkpoint(fmt.Sprintf("merge slides %s + %s", args[0], args[1])); err != nil {
		return err
	}

	merged := sess.Deck.Merge(args[0], args[1])
	if merged == nil {
		return fmt.Errorf("both slide ids must exist: %s, %s", args[0], args[1])
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Merged into slide %s (%.2fs - %.2fs)\n",
		merged.ID, merged.StartTime, merged.EndTime)
	return nil
}

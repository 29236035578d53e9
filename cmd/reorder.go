package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <slide-id>...",
	Short: "Rearrange slides into the given order",
	Long: `Reorder the timeline to match the listed slide ids. The list must
contain every current slide id exactly once; anything else fails and
leaves the timeline unchanged.

Example:
  slidedraft reorder 9e8d7c6b 3fa1b2c4 5a4b3c2d`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReorder,
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}

func runReorder(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if err := sess.Checkpoint("reorder slides"); err != nil {
		return err
	}

	if !sess.Deck.Reorder(args) {
		return fmt.Errorf("id list must match the current slide set exactly (%d slide(s))",
			len(sess.Deck.Slides))
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Reordered %d slide(s)\n", len(args))
	return nil
}

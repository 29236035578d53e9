package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <slide-id>",
	Short: "Delete a slide from the timeline",
	Long: `Remove a slide by id. The remaining slides are renumbered to keep
positions dense.

Example:
  slidedraft remove 3fa1b2c4`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if err := sess.Checkpoint(fmt.Sprintf("remove slide %s", args[0])); err != nil {
		return err
	}

	if !sess.Deck.Remove(args[0]) {
		return fmt.Errorf("no slide with id: %s", args[0])
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Removed slide %s (%d remaining)\n", args[0], len(sess.Deck.Slides))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoList bool

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last edit",
	Long: `Restore the timeline to the state captured by the most recent
checkpoint. Checkpoints are taken before every edit; up to 50 are kept.

Examples:
  slidedraft undo
  slidedraft undo --list`,
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)

	undoCmd.Flags().BoolVar(&undoList, "list", false, "Show the checkpoint stack instead of undoing")
}

func runUndo(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if undoList {
		history := sess.History()
		if len(history) == 0 {
			fmt.Println("No checkpoints")
			return nil
		}
		fmt.Printf("%d checkpoint(s), most recent first:\n\n", len(history))
		for i, description := range history {
			fmt.Printf("%3d. %s\n", i+1, description)
		}
		return nil
	}

	description, err := sess.Undo()
	if err != nil {
		return err
	}
	if description == "" {
		fmt.Println("Nothing to undo")
		return nil
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Undid: %s\n", description)
	return nil
}

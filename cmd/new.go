package cmd

import (
	"fmt"

	"github.com/pders01/slidedraft/internal/config"
	"github.com/pders01/slidedraft/internal/project"
	"github.com/pders01/slidedraft/internal/session"
	"github.com/pders01/slidedraft/internal/style"
	"github.com/spf13/cobra"
)

var newPreset string

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new drafting project",
	Long: `Initialize a project workspace in the --project directory:
  - assets/{images,audio,video} and exports/ directories
  - project.json manifest
  - draft.json session state with an empty timeline

Example:
  slidedraft new my-talk
  slidedraft new my-talk --preset cinematic`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newPreset, "preset", "", "Apply a built-in style preset to the global style")
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]

	if project.IsProject(projectDir) {
		return fmt.Errorf("already a slidedraft project: %s", projectDir)
	}

	presetName := newPreset
	if presetName == "" {
		presetName = config.GetDefaultPreset()
	}

	sess := session.New()
	if presetName != "" {
		preset, ok := style.GetPreset(presetName)
		if !ok {
			return fmt.Errorf("unknown preset: %s", presetName)
		}
		sess.Deck.GlobalStyle = preset.Style.Clone()
	}

	if _, err := project.Initialize(projectDir, name); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}
	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Project created: %s\n", name)
	fmt.Printf("  Workspace: %s\n", projectDir)
	if presetName != "" {
		fmt.Printf("  Preset:    %s\n", presetName)
	}
	fmt.Println("\nNext: slidedraft ingest <transcript.json>")
	return nil
}

package cmd

import (
	"fmt"

	"github.com/pders01/slidedraft/internal/project"
	"github.com/spf13/cobra"
)

var (
	editTitle      string
	editBody       string
	editNotes      string
	editBackground string
)

var editCmd = &cobra.Command{
	Use:   "edit <slide-id>",
	Short: "Edit a slide's text fields and background",
	Long: `Change a slide's title, body, speaker notes, or background image.
Only the flags you pass are changed.

--background imports the image file into the project's assets directory
and stores the resulting asset reference on the slide.

Examples:
  slidedraft edit 3fa1b2c4 --title "Introduction"
  slidedraft edit 3fa1b2c4 --background shots/cover.png`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editBody, "body", "", "New body text")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "New speaker notes")
	editCmd.Flags().StringVar(&editBackground, "background", "", "Image file to import as background")
}

func runEdit(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	slide := sess.Deck.Get(args[0])
	if slide == nil {
		return fmt.Errorf("no slide with id: %s", args[0])
	}

	if err := sess.Checkpoint(fmt.Sprintf("edit slide %s", slide.ID)); err != nil {
		return err
	}

	if cmd.Flags().Changed("title") {
		slide.Title = editTitle
	}
	if cmd.Flags().Changed("body") {
		slide.BodyText = editBody
	}
	if cmd.Flags().Changed("notes") {
		slide.SpeakerNotes = editNotes
	}

	if cmd.Flags().Changed("background") {
		manifest, err := project.LoadManifest(projectDir)
		if err != nil {
			return err
		}
		asset, err := manifest.ImportAsset(projectDir, editBackground, "image")
		if err != nil {
			return err
		}
		if err := manifest.Save(projectDir); err != nil {
			return err
		}
		slide.BackgroundImageRef = asset.AssetID
		fmt.Printf("✓ Imported background: %s (asset %s)\n", asset.Filename, asset.AssetID)
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Updated slide %s\n", slide.ID)
	return nil
}

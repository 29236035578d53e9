package cmd

import (
	"fmt"

	"github.com/pders01/slidedraft/internal/models"
	"github.com/spf13/cobra"
)

var (
	addTitle string
	addBody  string
	addNotes string
	addStart float64
	addEnd   float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a slide to the timeline",
	Long: `Create a slide directly, without going through transcript ingestion,
and append it at the end of the timeline.

Example:
  slidedraft add --title "Questions?" --start 120 --end 130`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addTitle, "title", "", "Slide title")
	addCmd.Flags().StringVar(&addBody, "body", "", "Body text")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Speaker notes")
	addCmd.Flags().Float64Var(&addStart, "start", 0, "Start time in seconds")
	addCmd.Flags().Float64Var(&addEnd, "end", 0, "End time in seconds")
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if err := sess.Checkpoint("add slide"); err != nil {
		return err
	}

	slide := models.NewSlide()
	slide.Title = addTitle
	slide.BodyText = addBody
	slide.SpeakerNotes = addNotes
	slide.StartTime = addStart
	slide.EndTime = addEnd
	sess.Deck.Add(slide)

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Added slide %s at position %d\n", slide.ID, slide.Order)
	return nil
}

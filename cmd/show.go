package cmd

import (
	"fmt"

	"github.com/pders01/slidedraft/internal/style"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <slide-id>",
	Short: "Show one slide in full",
	Long: `Display every field of a slide plus its resolved style: the global
style overridden by the slide's template (if any), overridden by the
slide's own style overrides (if any).

Example:
  slidedraft show 3fa1b2c4`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	slide := sess.Deck.Get(args[0])
	if slide == nil {
		return fmt.Errorf("no slide with id: %s", args[0])
	}

	fmt.Printf("Slide %s (position %d)\n\n", slide.ID, slide.Order)
	fmt.Printf("Time:     %.2fs - %.2fs (%.2fs)\n", slide.StartTime, slide.EndTime, slide.Duration())
	title := slide.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("Title:    %s\n", title)
	fmt.Printf("Body:     %s\n", slide.BodyText)
	if slide.SpeakerNotes != "" {
		fmt.Printf("Notes:    %s\n", slide.SpeakerNotes)
	}
	if slide.BackgroundImageRef != "" {
		fmt.Printf("Background: %s\n", slide.BackgroundImageRef)
	}
	if slide.TemplateID != "" {
		fmt.Printf("Template: %s\n", slide.TemplateID)
	}
	if len(slide.Animations) > 0 {
		fmt.Printf("Animations: %d\n", len(slide.Animations))
	}
	fmt.Printf("Transition: %s (%.1fs)\n", slide.Transition.Type, slide.Transition.Duration)

	resolved := style.ForSlide(sess.Deck.GlobalStyle, sess.Templates, slide)
	scope := "global"
	if slide.TemplateID != "" && sess.Templates.Get(slide.TemplateID) != nil &&
		sess.Templates.Get(slide.TemplateID).Style != nil {
		scope = "template"
	}
	if slide.StyleOverrides != nil {
		scope = "override"
	}

	fmt.Printf("\nResolved style (from %s scope):\n", scope)
	fmt.Printf("  Font:       %s, title %dpx, body %dpx\n",
		resolved.FontFamily, resolved.FontSizeTitle, resolved.FontSizeBody)
	fmt.Printf("  Colors:     text %s on %s\n", resolved.FontColor, resolved.BackgroundColor)
	fmt.Printf("  Layout:     %s aligned, %dpx padding\n", resolved.TextAlignment, resolved.Padding)
	return nil
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pders01/slidedraft/internal/models"
	"github.com/pders01/slidedraft/internal/style"
	"github.com/spf13/cobra"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Manage the global style and per-slide overrides",
	Long: `Style properties cascade across three scopes: the project's global
style, the slide's template style, and the slide's own overrides. A
present higher scope replaces the lower one wholesale, defaults
included, rather than merging field by field.`,
}

var stylePresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in style presets",
	RunE:  runStylePresets,
}

var stylePresetCmd = &cobra.Command{
	Use:   "preset <name>",
	Short: "Apply a built-in preset to the global style",
	Args:  cobra.ExactArgs(1),
	RunE:  runStylePreset,
}

var styleSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one field of the global style",
	Long: `Set a global style field. Fields: font_family, font_size_title,
font_size_body, font_color, background_color, text_alignment, padding,
use_bold, use_italic, wrap_width.

Example:
  slidedraft style set font_color "#FFD700"`,
	Args: cobra.ExactArgs(2),
	RunE: runStyleSet,
}

var styleOverrideCmd = &cobra.Command{
	Use:   "override <slide-id> <field> <value>",
	Short: "Set one field of a slide's style override",
	Long: `Set a field on a slide's override scope. A slide without an override
gets one seeded from the defaults first, so the override then replaces
the template and global scopes entirely, not just the field you set.

Example:
  slidedraft style override 3fa1b2c4 font_size_title 96`,
	Args: cobra.ExactArgs(3),
	RunE: runStyleOverride,
}

var styleClearCmd = &cobra.Command{
	Use:   "clear <slide-id>",
	Short: "Remove a slide's style override",
	Args:  cobra.ExactArgs(1),
	RunE:  runStyleClear,
}

func init() {
	rootCmd.AddCommand(styleCmd)
	styleCmd.AddCommand(stylePresetsCmd)
	styleCmd.AddCommand(stylePresetCmd)
	styleCmd.AddCommand(styleSetCmd)
	styleCmd.AddCommand(styleOverrideCmd)
	styleCmd.AddCommand(styleClearCmd)
}

func runStylePresets(cmd *cobra.Command, args []string) error {
	for _, p := range style.ListPresets() {
		fmt.Printf("%-14s %s\n", p.Name, p.Description)
	}
	return nil
}

func runStylePreset(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	preset, ok := style.GetPreset(args[0])
	if !ok {
		return fmt.Errorf("unknown preset: %s (see: slidedraft style presets)", args[0])
	}

	if err := sess.Checkpoint(fmt.Sprintf("apply preset %s", preset.Name)); err != nil {
		return err
	}
	sess.Deck.GlobalStyle = preset.Style.Clone()

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Applied preset %s to the global style\n", preset.Name)
	return nil
}

func runStyleSet(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if err := sess.Checkpoint(fmt.Sprintf("set global %s", args[0])); err != nil {
		return err
	}
	if err := setStyleField(&sess.Deck.GlobalStyle, args[0], args[1]); err != nil {
		return err
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Global style: %s = %s\n", args[0], args[1])
	return nil
}

func runStyleOverride(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	slide := sess.Deck.Get(args[0])
	if slide == nil {
		return fmt.Errorf("no slide with id: %s", args[0])
	}

	if err := sess.Checkpoint(fmt.Sprintf("override %s on slide %s", args[1], slide.ID)); err != nil {
		return err
	}

	if slide.StyleOverrides == nil {
		seeded := models.DefaultStyle()
		slide.StyleOverrides = &seeded
	}
	if err := setStyleField(slide.StyleOverrides, args[1], args[2]); err != nil {
		return err
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Slide %s override: %s = %s\n", slide.ID, args[1], args[2])
	return nil
}

func runStyleClear(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	slide := sess.Deck.Get(args[0])
	if slide == nil {
		return fmt.Errorf("no slide with id: %s", args[0])
	}
	if slide.StyleOverrides == nil {
		fmt.Printf("Slide %s has no style override\n", slide.ID)
		return nil
	}

	if err := sess.Checkpoint(fmt.Sprintf("clear override on slide %s", slide.ID)); err != nil {
		return err
	}
	slide.StyleOverrides = nil

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Cleared style override on slide %s\n", slide.ID)
	return nil
}

// setStyleField applies a textual field/value pair to a style record.
func setStyleField(s *models.Style, field, value string) error {
	switch field {
	case "font_family":
		s.FontFamily = value
	case "font_color":
		s.FontColor = value
	case "background_color":
		s.BackgroundColor = value
	case "text_alignment":
		s.TextAlignment = value
	case "font_size_title", "font_size_body", "padding":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", field, err)
		}
		switch field {
		case "font_size_title":
			s.FontSizeTitle = n
		case "font_size_body":
			s.FontSizeBody = n
		case "padding":
			s.Padding = n
		}
	case "use_bold", "use_italic":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", field, err)
		}
		if field == "use_bold" {
			s.UseBold = b
		} else {
			s.UseItalic = b
		}
	case "wrap_width":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("wrap_width expects a number: %w", err)
		}
		s.WrapWidth = &w
	default:
		return fmt.Errorf("unknown style field: %s", field)
	}
	return nil
}

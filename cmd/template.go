package cmd

import (
	"fmt"

	"github.com/pders01/slidedraft/internal/models"
	"github.com/pders01/slidedraft/internal/style"
	"github.com/spf13/cobra"
)

var (
	templateDescription string
	templatePreset      string
	templateFromGlobal  bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the project's template library",
	Long: `Templates are reusable slide skeletons: a style plus default
animation and transition data. Slides opt into a template by id; the
template's style then sits between the global style and the slide's
own overrides in the cascade.`,
}

var templateAddCmd = &cobra.Command{
	Use:   "add <id> <name>",
	Short: "Add a template to the library",
	Long: `Create a template. Its style can be seeded from a built-in preset or
from the current global style; without either, the template carries no
style and only contributes layout/animation defaults.

Examples:
  slidedraft template add section "Section header" --preset cinematic
  slidedraft template add plain "Plain" --from-global`,
	Args: cobra.ExactArgs(2),
	RunE: runTemplateAdd,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates in the library",
	RunE:  runTemplateList,
}

var templateRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a template from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateRemove,
}

var templateAssignCmd = &cobra.Command{
	Use:   "assign <slide-id> <template-id>",
	Short: "Assign a template to a slide",
	Args:  cobra.ExactArgs(2),
	RunE:  runTemplateAssign,
}

var templateClearCmd = &cobra.Command{
	Use:   "clear <slide-id>",
	Short: "Detach a slide from its template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateClear,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateRemoveCmd)
	templateCmd.AddCommand(templateAssignCmd)
	templateCmd.AddCommand(templateClearCmd)

	templateAddCmd.Flags().StringVar(&templateDescription, "description", "", "Template description")
	templateAddCmd.Flags().StringVar(&templatePreset, "preset", "", "Seed the template style from a built-in preset")
	templateAddCmd.Flags().BoolVar(&templateFromGlobal, "from-global", false, "Seed the template style from the current global style")
}

func runTemplateAdd(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if templatePreset != "" && templateFromGlobal {
		return fmt.Errorf("--preset and --from-global are mutually exclusive")
	}

	tmpl := models.NewTemplate(args[0], args[1])
	tmpl.Description = templateDescription

	if templatePreset != "" {
		preset, ok := style.GetPreset(templatePreset)
		if !ok {
			return fmt.Errorf("unknown preset: %s", templatePreset)
		}
		seeded := preset.Style.Clone()
		tmpl.Style = &seeded
	}
	if templateFromGlobal {
		seeded := sess.Deck.GlobalStyle.Clone()
		tmpl.Style = &seeded
	}

	sess.Templates.Add(tmpl)

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Added template %s (%s)\n", tmpl.ID, tmpl.Name)
	return nil
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	infos := sess.Templates.List()
	if len(infos) == 0 {
		fmt.Println("No templates")
		return nil
	}

	for _, info := range infos {
		styled := ""
		if info.HasStyle {
			styled = "  [style]"
		}
		fmt.Printf("%-16s %s%s\n", info.ID, info.Name, styled)
		if info.Description != "" {
			fmt.Printf("                 %s\n", info.Description)
		}
	}
	return nil
}

func runTemplateRemove(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if !sess.Templates.Remove(args[0]) {
		return fmt.Errorf("no template with id: %s", args[0])
	}

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Removed template %s\n", args[0])
	return nil
}

func runTemplateAssign(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	slide := sess.Deck.Get(args[0])
	if slide == nil {
		return fmt.Errorf("no slide with id: %s", args[0])
	}
	if sess.Templates.Get(args[1]) == nil {
		return fmt.Errorf("no template with id: %s", args[1])
	}

	if err := sess.Checkpoint(fmt.Sprintf("assign template %s to slide %s", args[1], slide.ID)); err != nil {
		return err
	}
	slide.TemplateID = args[1]

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Slide %s now uses template %s\n", slide.ID, args[1])
	return nil
}

func runTemplateClear(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	slide := sess.Deck.Get(args[0])
	if slide == nil {
		return fmt.Errorf("no slide with id: %s", args[0])
	}
	if slide.TemplateID == "" {
		fmt.Printf("Slide %s has no template\n", slide.ID)
		return nil
	}

	if err := sess.Checkpoint(fmt.Sprintf("clear template on slide %s", slide.ID)); err != nil {
		return err
	}
	slide.TemplateID = ""

	if err := sess.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Cleared template on slide %s\n", slide.ID)
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/slidedraft/internal/project"
	"github.com/pders01/slidedraft/internal/render"
	"github.com/spf13/cobra"
)

var (
	exportToon bool
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the render document",
	Long: `Produce the handoff document for the rendering backend: every slide's
content plus its resolved style, animations, transition, and effects.

By default the document is printed as JSON; --out writes it into the
project's exports/ directory (or to the given path).

Examples:
  slidedraft export
  slidedraft export --toon
  slidedraft export --out deck.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportToon, "toon", false, "Output in LLM-friendly toon format")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	projectName := ""
	if manifest, err := project.LoadManifest(projectDir); err == nil {
		projectName = manifest.ProjectName
	}

	doc := render.BuildDocument(projectName, sess.Deck, sess.Templates)

	var output []byte
	if exportToon {
		encoded, err := gotoon.Encode(doc)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		output = []byte(encoded)
	} else {
		output, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
	}

	if exportOut == "" {
		fmt.Println(string(output))
		return nil
	}

	outPath := exportOut
	if !filepath.IsAbs(outPath) && filepath.Dir(outPath) == "." {
		outPath = filepath.Join(projectDir, "exports", outPath)
	}
	if err := os.WriteFile(outPath, output, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Printf("✓ Exported %d slide(s): %s\n", doc.SlideCount, outPath)
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/pders01/slidedraft/internal/config"
	"github.com/pders01/slidedraft/internal/embeddings"
	"github.com/pders01/slidedraft/internal/ollama"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build slide embeddings for semantic search",
	Long: `Generate an embedding vector for every slide's text via a local
Ollama server and store them in the project's embedding index. The
find command uses the index for hybrid keyword + semantic search.

Requires Ollama to be running with the configured model pulled:
  ollama pull nomic-embed-text`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if len(sess.Deck.Slides) == 0 {
		fmt.Println("No slides to index")
		return nil
	}

	if !config.GetEmbeddingsEnabled() {
		return fmt.Errorf("embeddings are disabled in the configuration")
	}
	if !ollama.IsAvailable(config.GetOllamaURL()) {
		return fmt.Errorf("Ollama is not available at %s", config.GetOllamaURL())
	}

	client, err := ollama.NewClient(config.GetOllamaURL(), config.GetEmbeddingModel())
	if err != nil {
		return err
	}
	if err := client.CheckModel(cmd.Context()); err != nil {
		return err
	}

	idx := embeddings.NewIndex(client.Model())
	for _, s := range sess.Deck.Slides {
		text := slideEmbeddingText(s.Title, s.BodyText, s.SpeakerNotes)
		if text == "" {
			continue
		}
		vec, err := client.Embed(cmd.Context(), text)
		if err != nil {
			return fmt.Errorf("embed slide %s: %w", s.ID, err)
		}
		if err := idx.Set(s.ID, vec); err != nil {
			return err
		}
	}

	if err := idx.Save(projectDir); err != nil {
		return err
	}

	fmt.Printf("✓ Indexed %d slide(s) with model %s\n", len(idx.Vectors), idx.Model)
	return nil
}

// slideEmbeddingText builds the searchable text for one slide.
func slideEmbeddingText(title, body, notes string) string {
	var parts []string
	if title != "" {
		parts = append(parts, "Title: "+title)
	}
	if body != "" {
		parts = append(parts, body)
	}
	if notes != "" {
		parts = append(parts, "Notes: "+notes)
	}
	return strings.Join(parts, "\n\n")
}

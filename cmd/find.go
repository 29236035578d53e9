package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pders01/slidedraft/internal/config"
	"github.com/pders01/slidedraft/internal/embeddings"
	"github.com/pders01/slidedraft/internal/models"
	"github.com/pders01/slidedraft/internal/ollama"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search slides by keyword and meaning",
	Long: `Search slide titles, bodies, and speaker notes.

Keyword matching always runs. When the project has an embedding index
(slidedraft index) and Ollama is reachable, semantic similarity is
blended in using the configured weights.

Example:
  slidedraft find "pricing model"`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

type findResult struct {
	Slide         *models.Slide
	Score         float64
	KeywordScore  int
	SemanticScore float64
	UsedSemantic  bool
}

func runFind(cmd *cobra.Command, args []string) error {
	sess, err := loadProjectSession()
	if err != nil {
		return err
	}

	if len(sess.Deck.Slides) == 0 {
		fmt.Println("No slides to search")
		return nil
	}

	query := args[0]
	queryWords := strings.Fields(strings.ToLower(query))

	// Semantic search needs the project index and a reachable Ollama.
	var queryEmbedding []float64
	idx, err := embeddings.LoadIndex(projectDir)
	if err != nil {
		return err
	}

	useSemanticSearch := false
	if idx != nil && config.GetEmbeddingsEnabled() && ollama.IsAvailable(config.GetOllamaURL()) {
		client, err := ollama.NewClient(config.GetOllamaURL(), config.GetEmbeddingModel())
		if err == nil {
			queryEmbedding, err = client.Embed(cmd.Context(), query)
			if err == nil {
				useSemanticSearch = true
				fmt.Println("Using hybrid search (keyword + semantic)")
			}
		}
	}
	if !useSemanticSearch {
		fmt.Println("Using keyword search only")
	}

	keywordWeight := config.GetKeywordWeight()
	semanticWeight := config.GetSemanticWeight()

	var results []findResult
	for _, s := range sess.Deck.Slides {
		keywordScore := slideRelevance(queryWords, s)

		var semanticScore float64
		usedSemantic := false
		if useSemanticSearch {
			if vec := idx.Get(s.ID); vec != nil {
				if similarity, err := embeddings.CosineSimilarity(queryEmbedding, vec); err == nil {
					// Map similarity from [-1, 1] to [0, 100].
					semanticScore = (similarity + 1) * 50
					usedSemantic = true
				}
			}
		}

		var finalScore float64
		if usedSemantic {
			normalizedKeyword := float64(keywordScore) / 2.0
			if normalizedKeyword > 100 {
				normalizedKeyword = 100
			}
			finalScore = keywordWeight*normalizedKeyword + semanticWeight*semanticScore
		} else {
			finalScore = float64(keywordScore)
		}

		if finalScore > 0 || keywordScore > 0 {
			results = append(results, findResult{
				Slide:         s,
				Score:         finalScore,
				KeywordScore:  keywordScore,
				SemanticScore: semanticScore,
				UsedSemantic:  usedSemantic,
			})
		}
	}

	if len(results) == 0 {
		fmt.Println("No slides match the query")
		return nil
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	fmt.Printf("\nFound %d matching slide(s):\n\n", len(results))
	for i, r := range results {
		scoreDisplay := fmt.Sprintf("%.1f", r.Score)
		if r.UsedSemantic {
			scoreDisplay += fmt.Sprintf(" (keyword: %d, semantic: %.1f%%)", r.KeywordScore, r.SemanticScore)
		} else {
			scoreDisplay += " (keyword only)"
		}

		title := r.Slide.Title
		if title == "" {
			title = "(untitled)"
		}

		fmt.Printf("%d. %s [score: %s]\n", i+1, r.Slide.ID, scoreDisplay)
		fmt.Printf("   Position: %d (%.1fs - %.1fs)\n", r.Slide.Order, r.Slide.StartTime, r.Slide.EndTime)
		fmt.Printf("   Title:    %s\n", title)

		body := r.Slide.BodyText
		if len(body) > 80 {
			body = body[:80] + "..."
		}
		if body != "" {
			fmt.Printf("   Body:     %s\n", body)
		}
		fmt.Println()
	}

	return nil
}

// slideRelevance scores keyword matches, weighting title hits highest.
func slideRelevance(queryWords []string, s *models.Slide) int {
	score := 0
	searchableText := strings.ToLower(fmt.Sprintf("%s %s %s",
		s.Title, s.BodyText, s.SpeakerNotes))

	for _, word := range queryWords {
		count := strings.Count(searchableText, word)
		score += count * 10

		if strings.Contains(strings.ToLower(s.Title), word) {
			score += 50
		}
		if strings.Contains(strings.ToLower(s.SpeakerNotes), word) {
			score += 20
		}
	}
	return score
}

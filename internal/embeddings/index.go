// Package embeddings stores and compares per-slide embedding vectors for
// semantic slide search.
package embeddings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// IndexFile is the embedding index inside a project workspace.
const IndexFile = "embeddings.json"

// Index maps slide ids to their embedding vectors. Vectors are only
// comparable when produced by the same model, so the index records it.
type Index struct {
	Model   string               `json:"model"`
	Vectors map[string][]float64 `json:"vectors"`
}

// NewIndex returns an empty index for the given model.
func NewIndex(model string) *Index {
	return &Index{Model: model, Vectors: make(map[string][]float64)}
}

// IndexPath returns the index path for a project directory.
func IndexPath(projectDir string) string {
	return filepath.Join(projectDir, IndexFile)
}

// LoadIndex reads a project's embedding index. A missing file yields
// (nil, nil): the project simply has no index yet.
func LoadIndex(projectDir string) (*Index, error) {
	data, err := os.ReadFile(IndexPath(projectDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read embedding index: %w", err)
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse embedding index: %w", err)
	}
	if idx.Vectors == nil {
		idx.Vectors = make(map[string][]float64)
	}
	return &idx, nil
}

// Save writes the index into the project directory.
func (idx *Index) Save(projectDir string) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode embedding index: %w", err)
	}
	if err := os.WriteFile(IndexPath(projectDir), data, 0644); err != nil {
		return fmt.Errorf("write embedding index: %w", err)
	}
	return nil
}

// Set validates and stores a slide's vector.
func (idx *Index) Set(slideID string, vec []float64) error {
	if err := Validate(vec); err != nil {
		return fmt.Errorf("slide %s: %w", slideID, err)
	}
	idx.Vectors[slideID] = vec
	return nil
}

// Get returns a slide's vector, or nil when the slide is not indexed.
func (idx *Index) Get(slideID string) []float64 {
	if idx == nil {
		return nil
	}
	return idx.Vectors[slideID]
}

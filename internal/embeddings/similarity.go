package embeddings

import (
	"fmt"
	"math"
)

// CosineSimilarity scores how close two vectors are, from -1 (opposite)
// to 1 (same direction).
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors must have same length: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vectors cannot be empty")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("vector norm cannot be zero")
	}

	similarity := dot / (normA * normB)

	// Clamp to [-1, 1] to absorb floating point error.
	if similarity > 1.0 {
		similarity = 1.0
	} else if similarity < -1.0 {
		similarity = -1.0
	}
	return similarity, nil
}

// Validate rejects empty vectors and vectors containing NaN or Inf.
func Validate(vec []float64) error {
	if len(vec) == 0 {
		return fmt.Errorf("embedding vector is empty")
	}
	for i, v := range vec {
		if math.IsNaN(v) {
			return fmt.Errorf("embedding contains NaN at index %d", i)
		}
		if math.IsInf(v, 0) {
			return fmt.Errorf("embedding contains Inf at index %d", i)
		}
	}
	return nil
}

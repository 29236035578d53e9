package config

import "github.com/spf13/viper"

// GetDefaultPreset returns the preset applied to new projects.
func GetDefaultPreset() string {
	return viper.GetString("style.default_preset")
}

// GetEmbeddingsEnabled reports whether semantic slide search is enabled.
func GetEmbeddingsEnabled() bool {
	return viper.GetBool("embeddings.enabled")
}

// GetEmbeddingModel returns the Ollama embedding model name.
func GetEmbeddingModel() string {
	return viper.GetString("embeddings.model")
}

// GetOllamaURL returns the Ollama API endpoint.
func GetOllamaURL() string {
	return viper.GetString("embeddings.ollama_url")
}

// GetKeywordWeight returns the keyword share of the hybrid search score.
func GetKeywordWeight() float64 {
	return viper.GetFloat64("search.keyword_weight")
}

// GetSemanticWeight returns the semantic share of the hybrid search score.
func GetSemanticWeight() float64 {
	return viper.GetFloat64("search.semantic_weight")
}

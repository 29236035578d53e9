package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pders01/slidedraft/internal/project"
	"github.com/pders01/slidedraft/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	projectDir string
)

var rootCmd = &cobra.Command{
	Use:   "slidedraft",
	Short: "Turn speech transcripts into editable slide decks",
	Long: `slidedraft converts timestamped transcripts into an ordered slide
timeline and supports interactive editing of that timeline:
  - pause/sentence-aware segmentation into slides
  - split, merge, reorder, and per-slide styling
  - three-scope style cascade (global, template, slide override)
  - checkpointed undo for every edit

State lives per project in draft.json; rendering and transcription are
external concerns that only exchange JSON documents with this tool.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/slidedraft/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", ".", "project directory")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "slidedraft")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("style.default_preset", "")
	viper.SetDefault("embeddings.enabled", true)
	viper.SetDefault("embeddings.model", "nomic-embed-text")
	viper.SetDefault("embeddings.ollama_url", "http://localhost:11434")
	viper.SetDefault("search.keyword_weight", 0.3)
	viper.SetDefault("search.semantic_weight", 0.7)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadProjectSession loads the session for the --project directory,
// failing when the directory is not an initialized workspace.
func loadProjectSession() (*session.Session, error) {
	if !project.IsProject(projectDir) {
		return nil, fmt.Errorf("not a slidedraft project: %s (run: slidedraft new <name>)", projectDir)
	}
	sess, err := session.Load(projectDir)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

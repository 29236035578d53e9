// Package project manages a drafting workspace on disk: the directory
// layout, the manifest, and the asset registry.
package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ManifestFile is the workspace manifest inside a project directory.
const ManifestFile = "project.json"

// Asset is one registered workspace asset.
type Asset struct {
	AssetID  string `json:"asset_id"`
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Source   string `json:"source,omitempty"`
}

// Manifest is the project.json document.
type Manifest struct {
	ProjectName string           `json:"project_name"`
	CreatedAt   time.Time        `json:"created_at"`
	Assets      map[string]Asset `json:"assets"`
}

// ManifestPath returns the manifest path for a project directory.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestFile)
}

// IsProject reports whether the directory holds an initialized workspace.
func IsProject(dir string) bool {
	_, err := os.Stat(ManifestPath(dir))
	return err == nil
}

// Initialize creates the workspace layout under dir and writes the
// manifest. Existing directories and notes are left alone.
func Initialize(dir, name string) (*Manifest, error) {
	for _, sub := range []string{
		filepath.Join("assets", "images"),
		filepath.Join("assets", "audio"),
		filepath.Join("assets", "video"),
		"exports",
	} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", sub, err)
		}
	}

	notesPath := filepath.Join(dir, "project.md")
	if _, err := os.Stat(notesPath); os.IsNotExist(err) {
		notes := fmt.Sprintf("# Project: %s\n\n## Content Strategy\n\n## Decisions\n\n## Notes\n", name)
		if err := os.WriteFile(notesPath, []byte(notes), 0644); err != nil {
			return nil, fmt.Errorf("create project notes: %w", err)
		}
	}

	m := &Manifest{
		ProjectName: name,
		CreatedAt:   time.Now(),
		Assets:      make(map[string]Asset),
	}
	if err := m.Save(dir); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadManifest reads the workspace manifest.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(ManifestPath(dir))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Assets == nil {
		m.Assets = make(map[string]Asset)
	}
	return &m, nil
}

// Save writes the manifest into the project directory.
func (m *Manifest) Save(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(ManifestPath(dir), data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ImportAsset copies a file into the workspace's asset directory for the
// given type and registers it. Returns the new asset record.
func (m *Manifest) ImportAsset(dir, srcPath, assetType string) (Asset, error) {
	id := uuid.NewString()
	filename := filepath.Base(srcPath)
	dstDir := filepath.Join(dir, "assets", assetType+"s")
	dstPath := filepath.Join(dstDir, filename)

	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return Asset{}, fmt.Errorf("create asset directory: %w", err)
	}
	if err := copyFile(srcPath, dstPath); err != nil {
		return Asset{}, fmt.Errorf("import asset %s: %w", srcPath, err)
	}

	asset := Asset{
		AssetID:  id,
		Filename: filename,
		Type:     assetType,
		Source:   "local",
	}
	m.Assets[id] = asset
	return asset, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Package skills manages the repo's skill documents: markdown files with a
// YAML frontmatter header, consumed by the AI CLIs out of ~/.claude/skills.
package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is one skill document. Content is the markdown body below the
// frontmatter.
type Skill struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Version     string   `yaml:"version"`
	Tags        []string `yaml:"tags"`
	Content     string   `yaml:"-"`
}

// Load parses a single skill file. The file must start with a `---`
// frontmatter block; the name falls back to the filename when the
// frontmatter omits it.
func Load(path string) (*Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill %s: %w", path, err)
	}

	sk, err := parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse skill %s: %w", path, err)
	}
	if sk.Name == "" {
		sk.Name = strings.TrimSuffix(filepath.Base(path), ".md")
	}
	return sk, nil
}

// List scans a directory for skill .md files and returns them sorted by
// filename (ReadDir order). Unparseable files are skipped, not fatal — one
// malformed document shouldn't hide the rest of the catalog.
func List(dir string) ([]*Skill, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read skills directory: %w", err)
	}

	var out []*Skill
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		sk, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		out = append(out, sk)
	}
	return out, nil
}

// Sync copies every skill document from sourceDir into targetDir
// (~/.claude/skills), creating the target as needed. Returns the number of
// files copied.
func Sync(sourceDir, targetDir string) (int, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read source skills directory: %w", err)
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create target directory: %w", err)
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(sourceDir, entry.Name()))
		if err != nil {
			return copied, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(targetDir, entry.Name()), data, 0644); err != nil {
			return copied, fmt.Errorf("failed to write %s: %w", entry.Name(), err)
		}
		copied++
	}
	return copied, nil
}

// TargetDir returns the default sync destination, ~/.claude/skills.
func TargetDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "skills"), nil
}

// parse splits frontmatter from body and unmarshals the header.
func parse(content string) (*Skill, error) {
	if !strings.HasPrefix(content, "---\n") {
		return nil, fmt.Errorf("missing frontmatter")
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, fmt.Errorf("unterminated frontmatter")
	}

	var sk Skill
	if err := yaml.Unmarshal([]byte(rest[:end]), &sk); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	body := rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	sk.Content = strings.TrimPrefix(body, "\n")
	return &sk, nil
}

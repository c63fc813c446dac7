package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aictl/internal/logger"
)

// Known platform profiles. The profile argument is an enumeration, not a
// free-form path component.
var validProfiles = map[string]bool{
	"laptop": true,
	"server": true,
}

// Options carries everything Generate needs. Paths come from the generator
// config section; Force continues past missing required variables.
type Options struct {
	Profile      string
	BaseFile     string
	ProfilesDir  string
	OutputFile   string
	EnvFile      string
	RequiredVars []string
	Force        bool
}

// ResolveProfile picks the profile to generate for: the explicit argument,
// then the CLAUDE_PLATFORM environment variable, then "laptop".
func ResolveProfile(arg string) (string, error) {
	profile := arg
	if profile == "" {
		profile = os.Getenv("CLAUDE_PLATFORM")
	}
	if profile == "" {
		profile = "laptop"
	}
	if !validProfiles[profile] {
		return "", fmt.Errorf("unknown profile %q (expected laptop or server)", profile)
	}
	return profile, nil
}

// Generate merges the base template with the profile override, substitutes
// environment placeholders, validates the result parses as JSON, and writes
// the settings file. Running it twice with unchanged inputs produces
// byte-identical output: the merge result is rendered through
// json.MarshalIndent, which orders keys deterministically.
func Generate(opts Options) error {
	base, err := readJSONFile(opts.BaseFile)
	if err != nil {
		return err
	}

	profileFile := filepath.Join(opts.ProfilesDir, opts.Profile+".json")
	override, err := readJSONFile(profileFile)
	if err != nil {
		return err
	}

	merged := Merge(base, override)
	rendered, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render merged settings: %w", err)
	}

	vars, err := LoadEnv(opts.EnvFile)
	if err != nil {
		return err
	}

	unset := UnsetVars(vars, opts.RequiredVars)
	if len(unset) > 0 {
		if !opts.Force {
			return fmt.Errorf("missing required variables: %s (set them or pass --force)",
				strings.Join(unset, ", "))
		}
		logger.Warn("[WARN] Continuing with unset variables: %s\n", strings.Join(unset, ", "))
	}

	substituted, unresolved := Substitute(string(rendered), vars)
	if len(unresolved) > 0 {
		logger.Warn("[WARN] Unresolved placeholders left in output: %s\n", strings.Join(unresolved, ", "))
	}

	// Parse-and-discard round trip: a malformed merge or a substitution
	// that broke the JSON must never reach disk.
	var check any
	if err := json.Unmarshal([]byte(substituted), &check); err != nil {
		return fmt.Errorf("generated settings are not valid JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(opts.OutputFile, []byte(substituted+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.OutputFile, err)
	}

	logger.Info("[INFO] Wrote %s (profile: %s)\n", opts.OutputFile, opts.Profile)
	return nil
}

// readJSONFile loads one template as a generic JSON object. A missing or
// malformed template is fatal for generation.
func readJSONFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	return obj, nil
}

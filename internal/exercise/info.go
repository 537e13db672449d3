package exercise

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// InfoFile is the name of the exercise manifest in a workspace root.
const InfoFile = "info.toml"

// Info is the parsed info.toml manifest.
type Info struct {
	WelcomeMessage string         `toml:"welcome_message"`
	FinalMessage   string         `toml:"final_message"`
	Exercises      []ExerciseInfo `toml:"exercises"`
}

// ExerciseInfo is one [[exercises]] entry.
type ExerciseInfo struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"`
	Test bool   `toml:"test"`
	Hint string `toml:"hint"`
}

// LoadInfo reads and validates an info.toml manifest.
func LoadInfo(path string) (*Info, error) {
	var info Info
	if _, err := toml.DecodeFile(path, &info); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := info.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &info, nil
}

// ParseInfo parses an in-memory manifest, e.g. the embedded official one.
func ParseInfo(data []byte) (*Info, error) {
	var info Info
	if err := toml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := info.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &info, nil
}

func (i *Info) validate() error {
	if len(i.Exercises) == 0 {
		return fmt.Errorf("no exercises defined")
	}

	seen := make(map[string]struct{}, len(i.Exercises))
	for ind, e := range i.Exercises {
		if e.Name == "" {
			return fmt.Errorf("exercise %d has no name", ind)
		}
		if e.Dir == "" {
			return fmt.Errorf("exercise %q has no dir", e.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("duplicate exercise name %q", e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}

// Build converts the manifest entries into Exercise values.
func (i *Info) Build() []Exercise {
	exercises := make([]Exercise, len(i.Exercises))
	for ind, e := range i.Exercises {
		exercises[ind] = Exercise{
			Name: e.Name,
			Dir:  e.Dir,
			Test: e.Test,
			Hint: e.Hint,
		}
	}
	return exercises
}

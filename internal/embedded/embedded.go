// Package embedded carries the official exercise set: the manifest, the
// pristine exercise templates and their solutions. Templates use a .tmpl
// suffix so the broken exercise sources are not compiled as part of this
// module; the suffix is stripped when files are materialized.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed info.toml gomod.tmpl exercises solutions
var files embed.FS

const tmplSuffix = ".tmpl"

// InfoTOML returns the official info.toml manifest.
func InfoTOML() []byte {
	data, err := files.ReadFile("info.toml")
	if err != nil {
		// The manifest is embedded at compile time; failing to read it
		// means the binary itself is broken.
		panic(err)
	}
	return data
}

// ExerciseSource returns the pristine source of an official exercise.
func ExerciseSource(dir, name string) ([]byte, bool) {
	return read(filepath.Join("exercises", dir, name+".go"+tmplSuffix))
}

// SolutionSource returns the reference solution of an official exercise.
func SolutionSource(dir, name string) ([]byte, bool) {
	return read(filepath.Join("solutions", dir, name+".go"+tmplSuffix))
}

func read(path string) ([]byte, bool) {
	data, err := files.ReadFile(filepath.ToSlash(path))
	if err != nil {
		return nil, false
	}
	return data, true
}

// WriteWorkspace materializes a fresh exercise workspace at root:
// the manifest, a go.mod for running exercises, and every exercise
// template. Solutions are not written; they appear lazily once an
// exercise passes.
func WriteWorkspace(root string) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("create workspace dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(root, "info.toml"), InfoTOML(), 0644); err != nil {
		return fmt.Errorf("write info.toml: %w", err)
	}

	gomod, err := files.ReadFile("gomod.tmpl")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(filepath.Join(root, "go.mod"), gomod, 0644); err != nil {
		return fmt.Errorf("write go.mod: %w", err)
	}

	return fs.WalkDir(files, "exercises", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(filepath.Join(root, filepath.FromSlash(path)), 0755)
		}

		data, err := files.ReadFile(path)
		if err != nil {
			return err
		}
		dst := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(path, tmplSuffix)))
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		return nil
	})
}

package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StateFile is the name of the persisted progress file in a workspace.
const StateFile = ".drill-state.json"

// stateFile is the on-disk representation of progress. Done exercises
// are stored by name so editing info.toml does not corrupt progress.
type stateFile struct {
	Current string   `json:"current"`
	Done    []string `json:"done"`
}

func (s *State) stateFilePath() string {
	return filepath.Join(s.root, StateFile)
}

// loadStateFile applies the persisted progress, if any. A missing file
// means a fresh workspace; unknown exercise names are ignored.
func (s *State) loadStateFile() error {
	data, err := os.ReadFile(s.stateFilePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	var sf stateFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse state file: %w", err)
	}

	done := make(map[string]struct{}, len(sf.Done))
	for _, name := range sf.Done {
		done[name] = struct{}{}
	}
	for i := range s.exercises {
		if _, ok := done[s.exercises[i].Name]; ok {
			s.exercises[i].Done = true
		}
		if s.exercises[i].Name == sf.Current {
			s.currentInd = i
		}
	}
	return nil
}

// saveStateFile writes progress atomically (temp file plus rename) so a
// crash mid-write never leaves a corrupt state file behind.
func (s *State) saveStateFile() error {
	sf := stateFile{Current: s.exercises[s.currentInd].Name}
	for i := range s.exercises {
		if s.exercises[i].Done {
			sf.Done = append(sf.Done, s.exercises[i].Name)
		}
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tmp, err := os.CreateTemp(s.root, StateFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.stateFilePath()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Run     string         `json:"run"`
	Seed    int64          `json:"seed"`
	Seconds float64        `json:"seconds"`
	Wave    int            `json:"wave"`
	Level   uint32         `json:"level"`
	Kills   int            `json:"kills"`
	Weapons map[string]int `json:"weapons"` // weapon ID → level
}

// SaveRunLog appends the completed run as a single JSON line to runs.jsonl
// under dir, creating the directory if needed.
func SaveRunLog(dir string, log RunLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// RunLogDir returns the directory where run logs are stored:
// $XDG_DATA_HOME/survivors, defaulting to ~/.local/share/survivors.
func RunLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "survivors"), nil
}

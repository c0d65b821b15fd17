package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := RunLogDir()
	if err != nil {
		t.Fatalf("RunLogDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "survivors")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := RunLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "survivors")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestSaveRunLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	log := RunLog{
		Run:     "abc",
		Seed:    7,
		Seconds: 93.5,
		Wave:    3,
		Level:   4,
		Kills:   21,
		Weapons: map[string]int{"blade": 2},
	}
	if err := SaveRunLog(dir, log); err != nil {
		t.Fatalf("SaveRunLog: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		t.Errorf("log entry should end with newline; got: %q", content)
	}
	var got RunLog
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Kills != 21 || got.Weapons["blade"] != 2 {
		t.Errorf("decoded = %+v; want kills 21 and blade level 2", got)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	dir := t.TempDir()

	for i := range 3 {
		if err := SaveRunLog(dir, RunLog{Wave: i + 1}); err != nil {
			t.Fatalf("SaveRunLog: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	// Each call appends one JSON line; count the newlines.
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.json")

	err := WriteJSON(path, map[string]any{
		"guid":  "abc",
		"title": "Clip",
	})
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("written file is not JSON: %v", err)
	}
	if decoded["guid"] != "abc" {
		t.Errorf("guid = %v, want abc", decoded["guid"])
	}
	if !strings.HasSuffix(string(raw), "\n") {
		t.Error("file does not end with a newline")
	}
}

func TestWriteJSONRejectsUnencodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")

	if err := WriteJSON(path, func() {}); err == nil {
		t.Fatal("expected an encode error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("a file was created despite the encode error")
	}
}

func TestWriteJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.json")

	if err := WriteJSON(path, map[string]any{"n": 1}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteJSON(path, map[string]any{"n": 2}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	raw, _ := os.ReadFile(path)
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("written file is not JSON: %v", err)
	}
	if decoded["n"] != float64(2) {
		t.Errorf("n = %v, want 2", decoded["n"])
	}
}

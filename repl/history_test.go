package repl

import (
	"path/filepath"
	"testing"
)

func TestHistoryAddAndNavigate(t *testing.T) {
	h := NewInputHistory(10)

	h.Add("1 + 1")
	h.Add("2 * 3")
	h.Add("") // ignored
	h.Add("2 * 3") // duplicate of last, ignored

	if h.Size() != 2 {
		t.Errorf("Expected size 2, got %d", h.Size())
	}

	if got := h.Previous(); got != "2 * 3" {
		t.Errorf("Expected '2 * 3', got %q", got)
	}
	if got := h.Previous(); got != "1 + 1" {
		t.Errorf("Expected '1 + 1', got %q", got)
	}
	if got := h.Previous(); got != "" {
		t.Errorf("Expected empty at top of history, got %q", got)
	}
	if got := h.Next(); got != "2 * 3" {
		t.Errorf("Expected '2 * 3', got %q", got)
	}
	if got := h.Next(); got != "" {
		t.Errorf("Expected empty past the end, got %q", got)
	}
}

func TestHistoryTrimsToMaxSize(t *testing.T) {
	h := NewInputHistory(3)
	for _, e := range []string{"a", "b", "c", "d", "e"} {
		h.Add(e)
	}
	if h.Size() != 3 {
		t.Errorf("Expected size 3, got %d", h.Size())
	}
	if got := h.Previous(); got != "e" {
		t.Errorf("Expected 'e', got %q", got)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewInputHistory(10)
	h.Add("x = 5")
	h.Clear()
	if h.Size() != 0 {
		t.Errorf("Expected empty history, got %d entries", h.Size())
	}
	if got := h.Previous(); got != "" {
		t.Errorf("Expected empty, got %q", got)
	}
}

func TestHistorySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewInputHistory(10)
	h.Add("1 + 1")
	h.Add("gcd(462, 1071)")
	if err := h.SaveFile(path); err != nil {
		t.Fatalf("Failed to save history: %v", err)
	}

	loaded := NewInputHistory(10)
	if err := loaded.LoadFile(path); err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if loaded.Size() != 2 {
		t.Errorf("Expected 2 entries, got %d", loaded.Size())
	}
	if got := loaded.Previous(); got != "gcd(462, 1071)" {
		t.Errorf("Expected last entry, got %q", got)
	}
}

func TestHistoryLoadMissingFile(t *testing.T) {
	h := NewInputHistory(10)
	if err := h.LoadFile(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("Missing history file should not error: %v", err)
	}
}

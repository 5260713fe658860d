package dict

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeWordList creates a temp word list file and returns its path.
func writeWordList(t *testing.T, lines ...string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "words")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}
	return path
}

func TestLoadKeepsFileOrder(t *testing.T) {
	path := writeWordList(t, "zebra", "apple", "mango")

	words, err := Load(Options{Paths: []string{path}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := []string{"zebra", "apple", "mango"}
	if len(words) != len(expected) {
		t.Fatalf("Load returned %d words, want %d", len(words), len(expected))
	}
	for i, w := range expected {
		if words[i] != w {
			t.Errorf("words[%d] = %q, want %q", i, words[i], w)
		}
	}
}

func TestLoadDropsShortWords(t *testing.T) {
	path := writeWordList(t, "a", "ab", "abc", "abcd", "abcde")

	words, err := Load(Options{Paths: []string{path}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, w := range words {
		if len(w) < DefaultMinWordLength {
			t.Errorf("Retained word %q shorter than %d characters", w, DefaultMinWordLength)
		}
	}
	if len(words) != 2 {
		t.Errorf("Load returned %d words, want 2", len(words))
	}
}

func TestLoadTruncatesLongWords(t *testing.T) {
	long := strings.Repeat("x", 50)
	path := writeWordList(t, long)

	words, err := Load(Options{Paths: []string{path}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(words) != 1 {
		t.Fatalf("Load returned %d words, want 1", len(words))
	}
	if len(words[0]) != DefaultMaxWordLength {
		t.Errorf("Word truncated to %d characters, want %d", len(words[0]), DefaultMaxWordLength)
	}
}

func TestLoadCapsWordCount(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "word" + string(rune('a'+i))
	}
	path := writeWordList(t, lines...)

	words, err := Load(Options{Paths: []string{path}, MaxWords: 4})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(words) != 4 {
		t.Errorf("Load returned %d words, want 4", len(words))
	}
	if words[0] != "worda" || words[3] != "wordd" {
		t.Errorf("Capped load should keep the file prefix, got %v", words)
	}
}

func TestLoadUsesFirstPathThatOpens(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	fallback := writeWordList(t, "fallback")

	words, err := Load(Options{Paths: []string{missing, fallback}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(words) != 1 || words[0] != "fallback" {
		t.Errorf("Load = %v, want [fallback]", words)
	}
}

func TestLoadUnavailable(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "nope"),
		filepath.Join(dir, "also-nope"),
	}

	_, err := Load(Options{Paths: paths})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Load error = %v, want ErrUnavailable", err)
	}
}

func TestLoadStripsCarriageReturns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words")
	if err := os.WriteFile(path, []byte("crlf\r\nword\r\n"), 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}

	words, err := Load(Options{Paths: []string{path}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for _, w := range words {
		if strings.ContainsAny(w, "\r\n") {
			t.Errorf("Word %q still contains line ending characters", w)
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to write word list: %v", err)
	}

	words, err := Load(Options{Paths: []string{path}})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("Load of empty file returned %d words, want 0", len(words))
	}
}

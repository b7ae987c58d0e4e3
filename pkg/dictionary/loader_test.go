package dictionary

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeWordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing word file: %v", err)
	}
	return path
}

func TestLoadWordList(t *testing.T) {
	path := writeWordFile(t, "Apple\n\n  crane \nBRICK\n\n")

	words, err := LoadWordList(path)
	if err != nil {
		t.Fatalf("LoadWordList: %v", err)
	}
	want := []string{"apple", "crane", "brick"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("LoadWordList = %v, want %v", words, want)
	}
}

func TestLoadWordListMissingFile(t *testing.T) {
	if _, err := LoadWordList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("LoadWordList(missing file) returned nil error")
	}
}

func TestLoadWordListLen(t *testing.T) {
	path := writeWordFile(t, "apple\ncat\ncrane\nhippopotamus\nbrick\n")

	words, err := LoadWordListLen(path, 5)
	if err != nil {
		t.Fatalf("LoadWordListLen: %v", err)
	}
	want := []string{"apple", "crane", "brick"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("LoadWordListLen = %v, want %v", words, want)
	}
}

func TestFrequenciesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frequencies.bin")
	in := map[string]float64{"apple": 4.62, "crane": 3.9, "zzyzx": 0.01}

	if err := SaveFrequencies(path, in); err != nil {
		t.Fatalf("SaveFrequencies: %v", err)
	}
	out, err := LoadFrequencies(path)
	if err != nil {
		t.Fatalf("LoadFrequencies: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestLoadFrequenciesBadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frequencies.bin")
	if err := os.WriteFile(path, []byte("not msgpack at all"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := LoadFrequencies(path); err == nil {
		t.Error("LoadFrequencies(garbage) returned nil error")
	}
}

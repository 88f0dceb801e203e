package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromText(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")

	text := "First line\nSecond line\nThird line"
	if err := FromText(text, out); err != nil {
		t.Fatalf("FromText() error = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestFromTextOverwrites(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")

	if err := os.WriteFile(out, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := FromText("fresh content", out); err != nil {
		t.Fatalf("FromText() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "stale" {
		t.Error("existing file was not overwritten")
	}
}

// Round trip: text rendered to a PDF and extracted back must preserve
// the word content for plain ASCII input. Extraction does not promise
// byte-exact layout, so compare the word sequence.
func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "roundtrip.pdf")

	text := "Hello transcription pipeline\nThis is the second line\nAnd a third one"
	if err := FromText(text, out); err != nil {
		t.Fatalf("FromText() error = %v", err)
	}

	got, err := ToText(out)
	if err != nil {
		t.Fatalf("ToText() error = %v", err)
	}

	wantWords := strings.Fields(text)
	gotWords := strings.Fields(got)
	if len(gotWords) != len(wantWords) {
		t.Fatalf("word count = %d, want %d (got %q)", len(gotWords), len(wantWords), got)
	}
	for i := range wantWords {
		if gotWords[i] != wantWords[i] {
			t.Errorf("word %d = %q, want %q", i, gotWords[i], wantWords[i])
		}
	}
}

func TestToTextMissingFile(t *testing.T) {
	if _, err := ToText(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("ToText() with missing file should fail")
	}
}

func TestToTextNotAPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ToText(path); err == nil {
		t.Error("ToText() with invalid content should fail")
	}
}

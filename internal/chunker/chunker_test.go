package chunker_test

import (
	"strings"
	"testing"

	"github.com/valpere/zonerefine/internal/chunker"
)

// --- Sentences tests ---

func TestSentences_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t "} {
		if got := chunker.Sentences(in); len(got) != 0 {
			t.Errorf("Sentences(%q) = %v, want none", in, got)
		}
	}
}

func TestSentences_SingleNoPunctuation(t *testing.T) {
	got := chunker.Sentences("  hello world this is great  ")
	if len(got) != 1 || got[0] != "hello world this is great" {
		t.Errorf("unexpected sentences: %q", got)
	}
}

func TestSentences_SplitsAfterPunctuation(t *testing.T) {
	got := chunker.Sentences("One. Two!  Three?\nFour")
	want := []string{"One.", "Two!", "Three?", "Four"}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSentences_NoSplitWithoutWhitespace(t *testing.T) {
	// "3.14" and "example.com" have no whitespace after the dot.
	got := chunker.Sentences("Pi is 3.14 on example.com today.")
	if len(got) != 1 {
		t.Errorf("expected 1 sentence, got %d: %q", len(got), got)
	}
}

func TestSentences_TrailingPunctuationKept(t *testing.T) {
	got := chunker.Sentences("Done. ")
	if len(got) != 1 || got[0] != "Done." {
		t.Errorf("unexpected sentences: %q", got)
	}
}

// --- GroupSize / Group tests ---

func TestGroupSize(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 2}, {5, 2}, {6, 3}, {7, 3}, {20, 3},
	}
	for _, tt := range tests {
		if got := chunker.GroupSize(tt.n); got != tt.want {
			t.Errorf("GroupSize(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestGroup_ChunkCounts(t *testing.T) {
	tests := []struct {
		sentences int
		chunks    int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {6, 2}, {7, 3}, {9, 3}, {10, 4},
	}
	for _, tt := range tests {
		sentences := make([]string, tt.sentences)
		for i := range sentences {
			sentences[i] = "S."
		}
		if got := len(chunker.Group(sentences)); got != tt.chunks {
			t.Errorf("Group(%d sentences) gave %d chunks, want %d", tt.sentences, got, tt.chunks)
		}
	}
}

func TestGroup_SevenSentences(t *testing.T) {
	sentences := []string{"A.", "B.", "C.", "D.", "E.", "F.", "G."}
	got := chunker.Group(sentences)
	want := []string{"A. B. C.", "D. E. F.", "G."}
	if len(got) != len(want) {
		t.Fatalf("expected %d chunks, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGroup_Empty(t *testing.T) {
	if got := chunker.Group(nil); got != nil {
		t.Errorf("expected nil, got %q", got)
	}
}

func TestGroup_ReconstructsText(t *testing.T) {
	text := "The quick brown fox jumps. Pack my box with jugs. How quick daft zebras jump! Is it fine? Yes."
	rejoined := strings.Join(chunker.Group(chunker.Sentences(text)), " ")
	if rejoined != text {
		t.Errorf("rejoined text differs:\n got %q\nwant %q", rejoined, text)
	}
}

// --- Preview tests ---

func TestPreview_ShortText(t *testing.T) {
	if got := chunker.Preview("short  text", 5); got != "short text" {
		t.Errorf("expected %q, got %q", "short text", got)
	}
}

func TestPreview_Truncates(t *testing.T) {
	if got := chunker.Preview("alpha beta gamma delta", 2); got != "alpha beta..." {
		t.Errorf("expected %q, got %q", "alpha beta...", got)
	}
}

func TestPreview_DefaultWordCount(t *testing.T) {
	text := strings.Repeat("w ", 20)
	got := chunker.Preview(text, 0)
	if n := len(strings.Fields(strings.TrimSuffix(got, "..."))); n != chunker.DefaultPreviewWords {
		t.Errorf("expected %d words, got %d", chunker.DefaultPreviewWords, n)
	}
}

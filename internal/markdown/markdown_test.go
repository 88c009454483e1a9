package markdown

import "testing"

func TestIsMarkdownFile(t *testing.T) {
	tests := map[string]bool{
		"notes.md":       true,
		"NOTES.MD":       true,
		"a/b.markdown":   true,
		"essay.txt":      false,
		"no-extension":   false,
		"archive.md.txt": false,
	}
	for path, want := range tests {
		if got := IsMarkdownFile(path); got != want {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestStripHTMLTags(t *testing.T) {
	got := StripHTMLTags("<p>Hello <b>world</b></p>")
	if got != "Hello world" {
		t.Errorf("StripHTMLTags = %q, want %q", got, "Hello world")
	}
}

func TestToPlainText(t *testing.T) {
	md := []byte("# Title\n\nsome *emphasis* here &amp; there.\n\n- first item\n- second item\n")
	got := ToPlainText(md)
	want := "Title\nsome emphasis here & there.\nfirst item\nsecond item"
	if got != want {
		t.Errorf("ToPlainText:\n got %q\nwant %q", got, want)
	}
}

func TestToPlainText_Empty(t *testing.T) {
	if got := ToPlainText(nil); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

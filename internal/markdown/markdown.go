// Package markdown flattens markdown documents into plain prose so they can
// be fed to the refinement engine.
package markdown

import (
	"bytes"
	"html"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// IsMarkdownFile reports whether path has a markdown extension.
func IsMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return true
	}
	return false
}

// ToPlainText renders md and strips the markup. Block elements become
// separate lines, HTML entities are decoded and blank lines are dropped.
func ToPlainText(md []byte) string {
	opts := mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags,
	}
	renderer := mdhtml.NewRenderer(opts)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	rendered := string(markdown.Render(p.Parse(md), renderer))

	text := html.UnescapeString(StripHTMLTags(rendered))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// StripHTMLTags removes everything between '<' and '>'.
func StripHTMLTags(htmlContent string) string {
	var result bytes.Buffer
	inTag := false

	for _, ch := range htmlContent {
		switch ch {
		case '<':
			inTag = true
		case '>':
			inTag = false
		default:
			if !inTag {
				result.WriteRune(ch)
			}
		}
	}

	return result.String()
}

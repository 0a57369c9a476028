// Package markdown provides a Normaliser for Markdown files. Optional
// YAML front matter supplies title, date, authors and places.
package markdown

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// frontMatter is the optional YAML header between "---" lines.
type frontMatter struct {
	Title         string   `yaml:"title"`
	Date          string   `yaml:"date"`
	Authors       []string `yaml:"authors"`
	Author        string   `yaml:"author"`
	Georeferences []string `yaml:"georeferences"`
	Places        []string `yaml:"places"`
}

// Normalise converts a markdown file into one document.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) ([]domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	meta, body, err := splitFrontMatter(raw.Content)
	if err != nil {
		return nil, err
	}
	content := stripMarkdown(string(body))

	title := meta.Title
	if title == "" {
		title = extractMarkdownTitle(string(body), raw.URI)
	}
	if content == "" && meta.Title == "" {
		return nil, nil
	}

	doc := domain.Document{
		Title:   title,
		Content: content,
		Date:    meta.Date,
	}
	authors := meta.Authors
	if meta.Author != "" {
		authors = append([]string{meta.Author}, authors...)
	}
	for _, a := range authors {
		doc.Authors = append(doc.Authors, splitAuthor(a))
	}
	if places := append(meta.Georeferences, meta.Places...); len(places) > 0 {
		doc.Georeferences = domain.StringList(places)
	}
	return []domain.Document{doc}, nil
}

// splitFrontMatter separates a leading YAML block from the body.
func splitFrontMatter(content []byte) (frontMatter, []byte, error) {
	var meta frontMatter
	trimmed := bytes.TrimPrefix(content, []byte("\ufeff"))
	if !bytes.HasPrefix(trimmed, []byte("---\n")) && !bytes.HasPrefix(trimmed, []byte("---\r\n")) {
		return meta, content, nil
	}

	rest := trimmed[bytes.IndexByte(trimmed, '\n')+1:]
	end := frontMatterEnd.FindIndex(rest)
	if end == nil {
		return meta, content, nil
	}
	if err := yaml.Unmarshal(rest[:end[0]], &meta); err != nil {
		return meta, nil, err
	}
	return meta, rest[end[1]:], nil
}

// Pre-compiled regular expressions for markdown stripping.
var (
	frontMatterEnd = regexp.MustCompile(`(?m)^---\s*$\n?`)
	codeBlock      = regexp.MustCompile("(?s)```.*?```")
	inlineCode     = regexp.MustCompile("`([^`]+)`")
	images         = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	links          = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings       = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasis       = regexp.MustCompile(`(\*\*|__|\*|_)([^*_\n]+)(\*\*|__|\*|_)`)
	blockquote     = regexp.MustCompile(`(?m)^>\s*`)
	hr             = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	listMarkers    = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedList   = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	multiNewlines  = regexp.MustCompile(`\n{3,}`)
)

// extractMarkdownTitle extracts a title from the first H1 or falls back to filename.
func extractMarkdownTitle(content, uri string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}

	filename := filepath.Base(uri)
	if filename == "." || filename == string(filepath.Separator) {
		return ""
	}
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return domain.CollapseSpace(filename)
}

// stripMarkdown removes common markdown formatting for plain text content.
// Code blocks are dropped; inline code keeps its text.
func stripMarkdown(content string) string {
	content = codeBlock.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "$1")
	content = images.ReplaceAllString(content, "")
	content = links.ReplaceAllString(content, "$1")
	content = headings.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "$2")
	content = blockquote.ReplaceAllString(content, "")
	content = hr.ReplaceAllString(content, "")
	content = listMarkers.ReplaceAllString(content, "")
	content = numberedList.ReplaceAllString(content, "")
	content = multiNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// splitAuthor splits "First Last" on the final space.
func splitAuthor(name string) domain.Author {
	name = domain.CollapseSpace(name)
	i := strings.LastIndexByte(name, ' ')
	if i < 0 {
		return domain.Author{LastName: name}
	}
	return domain.Author{FirstName: name[:i], LastName: name[i+1:]}
}

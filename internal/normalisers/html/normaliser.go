package html

import (
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".html", ".htm", ".xhtml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Meta names lifted into document fields.
var (
	dateMetaNames   = []string{"date", "dc.date", "article:published_time", "dcterms.created"}
	authorMetaNames = []string{"author", "dc.creator"}
)

// Normalise converts an HTML page into one document.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) ([]domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	root, err := xhtml.Parse(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, err
	}

	p := &page{meta: make(map[string]string)}
	p.walk(root, true)

	content := p.text()
	title := domain.CollapseSpace(p.title)
	if title == "" {
		title = domain.CollapseSpace(p.heading)
	}
	if title == "" {
		title = extractTitle(raw.URI)
	}
	if content == "" && p.title == "" && p.heading == "" {
		return nil, nil
	}

	doc := domain.Document{
		Title:   title,
		Content: content,
		Date:    p.first(dateMetaNames),
	}
	if author := p.first(authorMetaNames); author != "" {
		doc.Authors = []domain.Author{splitAuthor(author)}
	}
	if place := p.meta["geo.placename"]; place != "" {
		doc.Georeferences = domain.StringList{place}
	}
	if pt, ok := parsePosition(p.meta["geo.position"]); ok {
		doc.Geopoint = &pt
	}
	return []domain.Document{doc}, nil
}

// page accumulates what walk finds.
type page struct {
	title   string
	heading string
	meta    map[string]string
	buf     strings.Builder
}

// skipped elements contribute no text.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Head:     true,
	atom.Svg:      true,
	atom.Template: true,
	atom.Nav:      true,
}

// block elements are separated by newlines.
var block = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Hr: true, atom.Li: true,
	atom.Tr: true, atom.Blockquote: true, atom.Pre: true, atom.Table: true,
	atom.Section: true, atom.Article: true, atom.H1: true, atom.H2: true,
	atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// walk visits the tree. Text is collected only outside skipped elements;
// title and meta tags are found anywhere.
func (p *page) walk(node *xhtml.Node, collect bool) {
	if node.Type == xhtml.ElementNode {
		switch node.DataAtom {
		case atom.Title:
			if p.title == "" {
				p.title = textOf(node)
			}
		case atom.Meta:
			p.addMeta(node)
		case atom.H1:
			if p.heading == "" {
				p.heading = textOf(node)
			}
		}
		if skipped[node.DataAtom] {
			collect = false
		}
		if collect && block[node.DataAtom] {
			p.buf.WriteByte('\n')
		}
	}
	if collect && node.Type == xhtml.TextNode {
		p.buf.WriteString(node.Data)
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, collect)
	}
	if collect && node.Type == xhtml.ElementNode && block[node.DataAtom] {
		p.buf.WriteByte('\n')
	}
}

func (p *page) addMeta(node *xhtml.Node) {
	var key, content string
	for _, a := range node.Attr {
		switch strings.ToLower(a.Key) {
		case "name", "property":
			key = strings.ToLower(strings.TrimSpace(a.Val))
		case "content":
			content = strings.TrimSpace(a.Val)
		}
	}
	if key != "" && content != "" {
		if _, ok := p.meta[key]; !ok {
			p.meta[key] = content
		}
	}
}

func (p *page) first(names []string) string {
	for _, name := range names {
		if v := p.meta[name]; v != "" {
			return v
		}
	}
	return ""
}

// text returns the body text with one line per block and no blank runs.
func (p *page) text() string {
	var lines []string
	for _, line := range strings.Split(p.buf.String(), "\n") {
		if line = domain.CollapseSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func textOf(node *xhtml.Node) string {
	var b strings.Builder
	var visit func(*xhtml.Node)
	visit = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(node)
	return strings.TrimSpace(b.String())
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

// parsePosition reads a geo.position value, "lat;lon" or "lat,lon".
func parsePosition(v string) (domain.GeoPoint, bool) {
	parts := strings.FieldsFunc(v, func(r rune) bool { return r == ';' || r == ',' })
	if len(parts) != 2 {
		return domain.GeoPoint{}, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domain.GeoPoint{}, false
	}
	return domain.GeoPoint{Lat: lat, Lon: lon}, true
}

// extractTitle falls back to the file name.
func extractTitle(uri string) string {
	filename := filepath.Base(uri)
	if filename == "." || filename == string(filepath.Separator) {
		return ""
	}
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return domain.CollapseSpace(filename)
}

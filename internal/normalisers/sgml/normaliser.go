// Package sgml provides a Normaliser for legacy newswire collections in
// SGML, where each <REUTERS> record becomes one document.
package sgml

import (
	"bytes"
	"context"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles newswire SGML files.
type Normaliser struct{}

// New creates a new SGML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/sgml", "application/sgml"}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".sgm", ".sgml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 70
}

// record collects the fields of one <REUTERS> element.
type record struct {
	title  strings.Builder
	body   strings.Builder
	date   strings.Builder
	places []string
}

// Normalise splits the file into records. The date string is carried
// verbatim in Date and the <PLACES> entries become georeferences.
// Records with neither title nor body are skipped.
func (n *Normaliser) Normalise(ctx context.Context, raw *domain.RawDocument) ([]domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	z := html.NewTokenizer(bytes.NewReader(raw.Content))
	var (
		docs  []domain.Document
		cur   *record
		stack []string
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return docs, err
			}
			return docs, nil

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "reuters" {
				if err := ctx.Err(); err != nil {
					return docs, err
				}
				cur = &record{}
				stack = stack[:0]
				continue
			}
			if cur != nil {
				stack = append(stack, tag)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "reuters" {
				if cur != nil {
					if doc, ok := cur.document(); ok {
						docs = append(docs, doc)
					}
				}
				cur = nil
				continue
			}
			if i := lastIndex(stack, tag); i >= 0 {
				stack = stack[:i]
			}

		case html.TextToken:
			if cur == nil || len(stack) == 0 {
				continue
			}
			text := string(z.Text())
			switch {
			case stack[len(stack)-1] == "title":
				cur.title.WriteString(text)
			case stack[len(stack)-1] == "date" && lastIndex(stack, "text") < 0:
				cur.date.WriteString(text)
			case stack[len(stack)-1] == "d" && len(stack) >= 2 && stack[len(stack)-2] == "places":
				cur.places = append(cur.places, text)
			case lastIndex(stack, "body") >= 0:
				cur.body.WriteString(text)
			}
		}
	}
}

func (r *record) document() (domain.Document, bool) {
	title := domain.CollapseSpace(stripControl(r.title.String()))
	body := strings.TrimSpace(stripControl(r.body.String()))
	if title == "" && body == "" {
		return domain.Document{}, false
	}

	places := make([]string, 0, len(r.places))
	for _, p := range r.places {
		if p = strings.TrimSpace(p); p != "" {
			places = append(places, p)
		}
	}

	return domain.Document{
		Title:         title,
		Content:       body,
		Date:          strings.TrimSpace(r.date.String()),
		Georeferences: domain.StringList(places),
	}, true
}

// stripControl removes the control characters newswire records use as
// start and end markers, keeping newlines and tabs.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

func lastIndex(stack []string, tag string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == tag {
			return i
		}
	}
	return -1
}

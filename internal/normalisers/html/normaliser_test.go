package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func normalise(t *testing.T, uri, body string) []domain.Document {
	t.Helper()
	docs, err := New().Normalise(context.Background(), &domain.RawDocument{
		URI:      uri,
		MIMEType: "text/html",
		Content:  []byte(body),
	})
	require.NoError(t, err)
	return docs
}

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	assert.Contains(t, mimeTypes, "text/html")
	assert.Contains(t, mimeTypes, "application/xhtml+xml")
	assert.Len(t, mimeTypes, 2)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	docs := normalise(t, "/path/to/document.html",
		"<html><head><title>Test Page</title></head><body><p>Hello World</p></body></html>")

	require.Len(t, docs, 1)
	assert.Equal(t, "Test Page", docs[0].Title)
	assert.Equal(t, "Hello World", docs[0].Content)
}

func TestNormalise_MetaFields(t *testing.T) {
	docs := normalise(t, "story.html", `<html><head>
		<title>Cocoa &amp; coffee</title>
		<meta name="author" content="Kofi  Annan Mensah">
		<meta name="date" content="1987-03-02">
		<meta name="geo.placename" content="Accra">
		<meta name="geo.position" content="5.6037;-0.1870">
		</head><body><p>Prices rose.</p></body></html>`)

	require.Len(t, docs, 1)
	doc := docs[0]
	assert.Equal(t, "Cocoa & coffee", doc.Title)
	assert.Equal(t, "1987-03-02", doc.Date)
	assert.Equal(t, []domain.Author{{FirstName: "Kofi Annan", LastName: "Mensah"}}, doc.Authors)
	assert.Equal(t, domain.StringList{"Accra"}, doc.Georeferences)
	require.NotNil(t, doc.Geopoint)
	assert.InDelta(t, 5.6037, doc.Geopoint.Lat, 1e-9)
	assert.InDelta(t, -0.187, doc.Geopoint.Lon, 1e-9)
}

func TestNormalise_SkipsScriptsAndKeepsBlocks(t *testing.T) {
	docs := normalise(t, "x.html", `<body>
		<nav>Home | About</nav>
		<script>var x = 1;</script><style>p {}</style>
		<h1>Heading</h1>
		<p>First   paragraph.</p><div>Second<br>line</div>
		<ul><li>one</li><li>two</li></ul>
	</body>`)

	require.Len(t, docs, 1)
	assert.Equal(t, "Heading", docs[0].Title, "h1 is the title when <title> is missing")
	assert.Equal(t, "Heading\nFirst paragraph.\nSecond\nline\none\ntwo", docs[0].Content)
}

func TestNormalise_TitleFromFilename(t *testing.T) {
	docs := normalise(t, "/docs/market_report-1987.html", "<body><p>Text only.</p></body>")

	require.Len(t, docs, 1)
	assert.Equal(t, "market report 1987", docs[0].Title)
}

func TestNormalise_Empty(t *testing.T) {
	assert.Empty(t, normalise(t, "empty.html", ""))

	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParsePosition(t *testing.T) {
	tests := map[string]bool{
		"48.85;2.35": true,
		"48.85, 2.35": true,
		"95;0":        false,
		"north;south": false,
		"1;2;3":       false,
		"":            false,
	}
	for in, ok := range tests {
		_, got := parsePosition(in)
		assert.Equal(t, ok, got, in)
	}
}

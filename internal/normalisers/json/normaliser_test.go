package json

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func TestSupported(t *testing.T) {
	n := New()
	assert.Equal(t, []string{"application/json"}, n.SupportedMIMETypes())
	assert.Equal(t, []string{".json"}, n.SupportedExtensions())
	assert.Equal(t, 80, n.Priority())
}

func TestNormalise_SingleObject(t *testing.T) {
	raw := &domain.RawDocument{URI: "doc.json", Content: []byte(`{
		"title": "Cocoa exports",
		"content": "Ghana cocoa exports rose.",
		"date": "1987-03-02",
		"georeferences": "Ghana",
		"authors": [{"first_name": "Ama", "last_name": "Owusu", "email": "ama@example.com"}],
		"geopoint": {"lat": 5.6, "lon": -0.18}
	}`)}

	docs, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "Cocoa exports", doc.Title)
	assert.Equal(t, "1987-03-02", doc.Date)
	assert.Equal(t, domain.StringList{"Ghana"}, doc.Georeferences)
	require.Len(t, doc.Authors, 1)
	assert.Equal(t, "Owusu", doc.Authors[0].LastName)
	require.NotNil(t, doc.Geopoint)
	assert.InDelta(t, 5.6, doc.Geopoint.Lat, 1e-9)
}

func TestNormalise_Array(t *testing.T) {
	raw := &domain.RawDocument{Content: []byte(`
		[{"title": "One", "georeferences": ["Paris", "Lyon"]}, {"title": "Two"}]`)}

	docs, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, domain.StringList{"Paris", "Lyon"}, docs[0].Georeferences)
	assert.Equal(t, "Two", docs[1].Title)
}

func TestNormalise_Empty(t *testing.T) {
	docs, err := New().Normalise(context.Background(), &domain.RawDocument{Content: []byte("  \n")})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNormalise_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed":         `{"title": `,
		"bad georeferences": `{"georeferences": 12}`,
		"malformed list":    `[{"title": "x"},`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New().Normalise(context.Background(), &domain.RawDocument{Content: []byte(body)})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

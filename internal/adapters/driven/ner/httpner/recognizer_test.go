package httpner

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

func TestRecognize_MapsLabels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ner", r.URL.Path)

		var req nerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Cocoa prices in Ghana rose in March 1987.", req.Text)

		_, _ = io.WriteString(w, `{"entities":[
			{"label":"GPE","text":"Ghana"},
			{"label":"DATE","text":"March 1987"},
			{"label":"ORG","text":"ICCO"},
			{"label":"fac","text":"Tema Port"}
		]}`)
	}))
	defer srv.Close()

	spans, err := NewRecognizer(Config{BaseURL: srv.URL}).
		Recognize(context.Background(), "Cocoa prices in Ghana rose in March 1987.")

	require.NoError(t, err)
	assert.Equal(t, []domain.EntitySpan{
		{Label: domain.LabelPlace, Text: "Ghana"},
		{Label: domain.LabelDate, Text: "March 1987"},
		{Label: domain.LabelOther, Text: "ICCO"},
		{Label: domain.LabelPlace, Text: "Tema Port"},
	}, spans)
}

func TestRecognize_Unavailable(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewRecognizer(Config{BaseURL: srv.URL}).Recognize(context.Background(), "x")
		assert.ErrorIs(t, err, domain.ErrRecognizerUnavailable)
	})

	t.Run("bad body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>")
		}))
		defer srv.Close()

		_, err := NewRecognizer(Config{BaseURL: srv.URL}).Recognize(context.Background(), "x")
		assert.ErrorIs(t, err, domain.ErrRecognizerUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := NewRecognizer(Config{BaseURL: "http://127.0.0.1:1"}).Recognize(context.Background(), "x")
		assert.ErrorIs(t, err, domain.ErrRecognizerUnavailable)
	})
}

func TestMapLabel(t *testing.T) {
	assert.Equal(t, domain.LabelPlace, MapLabel("LOC"))
	assert.Equal(t, domain.LabelDate, MapLabel("date"))
	assert.Equal(t, domain.LabelOther, MapLabel("PERSON"))
}

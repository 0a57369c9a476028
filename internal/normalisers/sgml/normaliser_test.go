package sgml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

const sample = `<!DOCTYPE lewis SYSTEM "lewis.dtd">
<REUTERS TOPICS="YES" LEWISSPLIT="TRAIN" NEWID="1">
<DATE>26-FEB-1987 15:01:01.79</DATE>
<TOPICS><D>cocoa</D></TOPICS>
<PLACES><D>el-salvador</D><D>usa</D><D>uruguay</D></PLACES>
<PEOPLE></PEOPLE>
<TEXT>&#2;
<TITLE>BAHIA COCOA REVIEW</TITLE>
<DATELINE>    SALVADOR, Feb 26 - </DATELINE><BODY>Showers continued throughout the week in
the Bahia cocoa zone.
 Reuter
&#3;</BODY></TEXT>
</REUTERS>
<REUTERS NEWID="2">
<DATE>26-FEB-1987 15:02:20.00</DATE>
<PLACES><D>usa</D></PLACES>
<TEXT TYPE="BRIEF">&#2;
<TITLE>STANDARD OIL &lt;SRD> TO FORM FINANCIAL UNIT</TITLE>
&#3;</TEXT>
</REUTERS>
<REUTERS NEWID="3">
<DATE>26-FEB-1987 15:03:00.00</DATE>
<TEXT TYPE="UNPROC">&#2;
&#3;</TEXT>
</REUTERS>
`

func TestSupported(t *testing.T) {
	n := New()
	assert.Contains(t, n.SupportedExtensions(), ".sgm")
	assert.Contains(t, n.SupportedMIMETypes(), "text/sgml")
	assert.Equal(t, 70, n.Priority())
}

func TestNormalise_Records(t *testing.T) {
	docs, err := New().Normalise(context.Background(), &domain.RawDocument{
		URI:     "reut2-000.sgm",
		Content: []byte(sample),
	})
	require.NoError(t, err)
	require.Len(t, docs, 2, "the record with neither title nor body is skipped")

	first := docs[0]
	assert.Equal(t, "BAHIA COCOA REVIEW", first.Title)
	assert.Equal(t, "26-FEB-1987 15:01:01.79", first.Date)
	assert.Equal(t, domain.StringList{"el-salvador", "usa", "uruguay"}, first.Georeferences)
	assert.Contains(t, first.Content, "Showers continued throughout the week")
	assert.NotContains(t, first.Content, "\x03")
	assert.NotContains(t, first.Content, "SALVADOR, Feb 26", "the dateline is not body text")

	brief := docs[1]
	assert.Equal(t, "STANDARD OIL <SRD> TO FORM FINANCIAL UNIT", brief.Title)
	assert.Empty(t, brief.Content)
	assert.Equal(t, domain.StringList{"usa"}, brief.Georeferences)
}

func TestNormalise_EmptyAndNil(t *testing.T) {
	docs, err := New().Normalise(context.Background(), &domain.RawDocument{Content: nil})
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalise_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Normalise(ctx, &domain.RawDocument{Content: []byte(sample)})
	assert.ErrorIs(t, err, context.Canceled)
}

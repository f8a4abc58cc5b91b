package manifest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	m := New()
	m.Add(Entry{File: "A.RAW", X: 10, Y: 10, W: 50, H: 50})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	want := `{
    "background": {
        "file": "A.RAW",
        "x": 10,
        "y": 10,
        "w": 50,
        "h": 50
    },
    "icons": []
}
`
	assert.Equal(t, want, b.String())
}

func TestRoundTrip(t *testing.T) {
	m := New()
	m.Add(Entry{File: "A.RAW", X: 10, Y: 10, W: 50, H: 50, Transparent: true})
	m.Add(Entry{File: "B.RAW", X: 100, Y: 20, W: 30, H: 30, Transparent: true})
	m.Add(Entry{File: "C.RAW", X: 0, Y: 0, W: 1, H: 1, Transparent: true})

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, 3, strings.Count(b.String(), `"transparent": true`))

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, m, got)
	assert.Equal(t, "A.RAW", got.Background.File)
	assert.Equal(t, []string{"A.RAW", "B.RAW", "C.RAW"}, files(got.Entries()))
}

func files(entries []Entry) []string {
	var s []string
	for _, e := range entries {
		s = append(s, e.File)
	}
	return s
}

func TestDecodeErrors(t *testing.T) {
	tables := []struct {
		doc string
		err error
	}{
		{`{"icons": []}`, errNoBackground},
		{`{"background": {"file": "", "w": 1, "h": 1}}`, errBadEntry},
		{`{"background": {"file": "A.RAW", "w": 1, "h": 1}, "icons": [{"file": "B.RAW", "w": 0, "h": 1}]}`, errBadEntry},
	}

	for _, table := range tables {
		_, err := Decode(strings.NewReader(table.doc))
		assert.True(t, errors.Is(err, table.err), "%s: %v", table.doc, err)
	}

	_, err := Decode(strings.NewReader(`{"background": `))
	assert.Error(t, err)
}

func TestMarshalEmpty(t *testing.T) {
	err := Encode(new(bytes.Buffer), New())
	assert.True(t, errors.Is(err, errNoBackground))
}

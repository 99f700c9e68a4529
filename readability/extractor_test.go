package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docdex"
	"github.com/fwojciec/docdex/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_empty_input(t *testing.T) {
	t.Parallel()

	e := readability.NewExtractor()
	_, err := e.Extract("")

	require.Error(t, err)
	assert.Equal(t, docdex.EPARSE, docdex.ErrorCode(err))
}

func TestExtractor_line_guarantees(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Test Page</title></head><body>
<article>
<h1>Installation Guide</h1>
<p>First install the dependencies. This paragraph needs to be long enough
for readability to treat it as real content rather than boilerplate, so it
rambles on for a few sentences about package managers and build systems.</p>
<p>Then run the build script and wait for it to finish compiling.</p>
</article>
</body></html>`

	e := readability.NewExtractor()
	result, err := e.Extract(html)
	require.NoError(t, err)

	require.NotEmpty(t, result.Text)
	for _, line := range strings.Split(result.Text, "\n") {
		assert.Equal(t, strings.TrimSpace(line), line)
		assert.NotEmpty(t, line)
	}
}

package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docdex"
	docgoquery "github.com/fwojciec/docdex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_removes_non_content_subtrees(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Sketcher</title><style>.x{color:red}</style></head>
<body>
<header><h1>Site Header</h1></header>
<nav><a href="/home">Home</a></nav>
<main><p>The Sketcher workbench creates 2D geometry.</p></main>
<aside>Related pages</aside>
<footer>Copyright notice</footer>
<script>console.log("tracking")</script>
</body></html>`

	e := docgoquery.NewExtractor()
	result, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "Sketcher", result.Title)
	assert.Equal(t, "The Sketcher workbench creates 2D geometry.", result.Text)
	assert.NotContains(t, result.Text, "Site Header")
	assert.NotContains(t, result.Text, "Home")
	assert.NotContains(t, result.Text, "Related pages")
	assert.NotContains(t, result.Text, "Copyright")
	assert.NotContains(t, result.Text, "tracking")
}

func TestExtractor_removal_is_structural_not_textual(t *testing.T) {
	t.Parallel()

	// Body text that mentions the tag names must survive.
	html := `<html><body><p>Use a Python script to style the header of your nav panel.</p></body></html>`

	e := docgoquery.NewExtractor()
	result, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "Use a Python script to style the header of your nav panel.", result.Text)
}

func TestExtractor_line_guarantees(t *testing.T) {
	t.Parallel()

	html := `<html><body>
	<h1>  First  </h1>
	<p>
		Second
	</p>
	<div></div>
	<p>Third</p>
</body></html>`

	e := docgoquery.NewExtractor()
	result, err := e.Extract(html)
	require.NoError(t, err)

	lines := strings.Split(result.Text, "\n")
	assert.Equal(t, []string{"First", "Second", "Third"}, lines)
	for _, line := range lines {
		assert.Equal(t, strings.TrimSpace(line), line)
		assert.NotEmpty(t, line)
	}
}

func TestExtractor_preserves_document_order(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>alpha</p><div><span>beta</span></div><p>gamma</p></body></html>`

	e := docgoquery.NewExtractor()
	result, err := e.Extract(html)
	require.NoError(t, err)

	assert.Equal(t, "alpha\nbeta\ngamma", result.Text)
}

func TestExtractor_empty_input(t *testing.T) {
	t.Parallel()

	e := docgoquery.NewExtractor()
	_, err := e.Extract("   ")

	require.Error(t, err)
	assert.Equal(t, docdex.EPARSE, docdex.ErrorCode(err))
}

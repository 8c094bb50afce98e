package render

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoclient/backend/internal/domain"
)

func TestHTML(t *testing.T) {
	templates := fstest.MapFS{
		"page.html": {Data: []byte("\n  <h1>$title</h1><p>$build</p><p>$title</p>\n")},
		"order.html": {Data: []byte("$a")},
	}
	r := NewRenderer(templates)

	t.Run("substitutes every occurrence and trims", func(t *testing.T) {
		got, err := r.HTML("page.html", R("$title", "Shop"), R("$build", "42"))
		require.NoError(t, err)
		assert.Equal(t, "<h1>Shop</h1><p>42</p><p>Shop</p>", string(got))
	})

	t.Run("applies replacements left to right", func(t *testing.T) {
		got, err := r.HTML("order.html", R("$a", "$b"), R("$b", "done"))
		require.NoError(t, err)
		assert.Equal(t, "done", string(got))
	})

	t.Run("does not escape values", func(t *testing.T) {
		got, err := r.HTML("order.html", R("$a", "<b>&</b>"))
		require.NoError(t, err)
		assert.Equal(t, "<b>&</b>", string(got))
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := r.HTML("missing.html")
		assert.Error(t, err)
	})
}

func TestEmbeddedTemplates(t *testing.T) {
	r := NewRenderer(Templates())

	page, err := r.HTML(VersionPage, R("$title", "Tokopedia Client API"), R("$build", "abc123"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Tokopedia Client API</title>")
	assert.Contains(t, string(page), "abc123")
	assert.NotContains(t, string(page), "$build")

	notFound, err := r.HTML(NotFoundPage, R("$title", "Tokopedia Client API"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "404 Not found")
	assert.NotContains(t, string(notFound), "$title")
}

func TestText(t *testing.T) {
	assert.Equal(t, []byte("404 Not found"), Text("  404 Not found\n"))
}

func TestJSON(t *testing.T) {
	got, err := JSON(domain.AppInfo{Name: "Tokopedia Client API", Build: "abc", Success: true})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Tokopedia Client API","build":"abc","success":true}`, string(got))

	got, err = JSON(domain.NewErrorPayload("Product not found"))
	require.NoError(t, err)
	assert.Equal(t, `{"reason":"Product not found","success":false}`, string(got))
}

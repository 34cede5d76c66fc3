package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument_ProducesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.pdf")

	err := NewWriter().WriteDocument(path, "Travel Insights", "Line one\n\nLine two")

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output should start with the PDF magic")
	assert.Greater(t, len(data), 500)
}

func TestWriteDocument_LongContentPaginates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.pdf")

	// Enough lines to force several page breaks at 16pt line height on A4.
	content := strings.Repeat("A reasonably long line of travel guide prose that wraps.\n", 200)
	err := NewWriter().WriteDocument(path, "Travel Insights", content)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Count page objects ("/Type /Pages" matches once too); more than one
	// page means at least three hits.
	assert.Greater(t, strings.Count(string(data), "/Type /Page"), 2)
}

func TestWriteDocument_EmptyContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.pdf")

	err := NewWriter().WriteDocument(path, "Travel Insights", "")

	require.NoError(t, err)
	assert.FileExists(t, path)
}

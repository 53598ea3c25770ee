package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aryavats2/interview-coach/internal/testutil"
)

func TestExtractText_PDFPagesInOrder(t *testing.T) {
	e := NewTextExtractor()

	text := e.ExtractText(testutil.BuildPDF("Jane Doe Backend Engineer", "Go Postgres Kubernetes"), "resume.pdf")

	require.NotEqual(t, NoTextFoundPDF, text)
	first := strings.Index(text, "Jane Doe Backend Engineer")
	second := strings.Index(text, "Go Postgres Kubernetes")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	assert.Equal(t, strings.TrimSpace(text), text)
}

func TestExtractText_PDFJoinsPagesWithNewline(t *testing.T) {
	e := NewTextExtractor()

	// Each page's plain text already ends in a newline.
	text := e.ExtractText(testutil.BuildPDF("Alpha", "Beta", "Gamma"), "three.pdf")

	assert.Equal(t, "Alpha\n\nBeta\n\nGamma", text)
}

func TestExtractText_PDFWithoutText(t *testing.T) {
	e := NewTextExtractor()
	assert.Equal(t, NoTextFoundPDF, e.ExtractText(testutil.BuildPDF(""), "blank.pdf"))
}

func TestExtractText_NotAPDF(t *testing.T) {
	e := NewTextExtractor()

	inputs := map[string][]byte{
		"empty":     {},
		"plaintext": []byte("this is certainly not a pdf document"),
		"truncated": testutil.BuildPDF("cut off")[:40],
		"header":    []byte("%PDF-1.4\n" + strings.Repeat("x", 200)),
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Empty(t, e.ExtractText(data, "broken.pdf"))
			})
		})
	}
}

func TestExtractText_DOCX(t *testing.T) {
	e := NewTextExtractor()

	text := e.ExtractText(testutil.BuildDOCX("Summary", "Built APIs &amp; pipelines"), "cv.docx")
	assert.Equal(t, "Summary\nBuilt APIs & pipelines", text)

	assert.Equal(t, NoTextFoundDocument, e.ExtractText(testutil.BuildDOCX(), "empty.docx"))
	assert.Empty(t, e.ExtractText([]byte("not a zip"), "broken.docx"))
}

func TestExtractFile(t *testing.T) {
	e := NewTextExtractor()
	dir := t.TempDir()

	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, testutil.BuildPDF("Hello from disk"), 0o644))
	assert.Contains(t, e.ExtractFile(path), "Hello from disk")

	assert.Empty(t, e.ExtractFile(filepath.Join(dir, "missing.pdf")))
}

func TestJoinPages(t *testing.T) {
	assert.Equal(t, "one\ntwo\n\nfour", joinPages([]string{"  one", "two", "", "four \n"}, "none"))
	assert.Equal(t, "none", joinPages([]string{" ", "\n"}, "none"))
	assert.Equal(t, "none", joinPages(nil, "none"))
}

func TestIsSupportedDocument(t *testing.T) {
	assert.True(t, IsSupportedDocument("resume.pdf"))
	assert.True(t, IsSupportedDocument("RESUME.PDF"))
	assert.True(t, IsSupportedDocument("resume.docx"))
	assert.False(t, IsSupportedDocument("resume.doc"))
	assert.False(t, IsSupportedDocument("notes.txt"))
	assert.False(t, IsSupportedDocument("pdf"))

	assert.True(t, IsPDF("a.Pdf"))
	assert.False(t, IsPDF("a.docx"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n\n   b \n"))
}

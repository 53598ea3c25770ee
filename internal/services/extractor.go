package services

import (
	"bytes"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	NoTextFoundPDF      = "No text found in PDF."
	NoTextFoundDocument = "No text found in document."
)

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// TextExtractor turns uploaded document bytes into plain text. It never
// returns an error: a document that cannot be parsed yields "" and a log line.
type TextExtractor interface {
	ExtractText(data []byte, filename string) string
	ExtractFile(path string) string
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// IsSupportedDocument reports whether the filename has an extension the
// extractor can actually parse.
func IsSupportedDocument(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

func IsPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

func (e *textExtractor) ExtractFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("❌ Failed to read document")
		return ""
	}
	return e.ExtractText(data, path)
}

func (e *textExtractor) ExtractText(data []byte, filename string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("file", filename).Interface("panic", r).Msg("❌ Error reading document")
			text = ""
		}
	}()

	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		text, err = extractDOCX(data)
	default:
		text, err = extractPDF(data)
	}
	if err != nil {
		log.Error().Err(err).Str("file", filename).Msg("❌ Error reading document")
		return ""
	}

	return text
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF")
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", pageIndex).Msg("⚠️  Failed to read PDF page")
			text = ""
		}
		pages = append(pages, text)
	}

	return joinPages(pages, NoTextFoundPDF), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse docx")
	}
	defer doc.Close()

	return joinPages([]string{wordXMLToText(doc.Editable().GetContent())}, NoTextFoundDocument), nil
}

// joinPages concatenates page texts in order, one newline apart, and trims
// the result. Documents without any text produce the placeholder.
func joinPages(pages []string, placeholder string) string {
	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if text == "" {
		return placeholder
	}
	return text
}

var (
	wordParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	wordTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]*>`)
)

// wordXMLToText reduces WordprocessingML to its visible text.
func wordXMLToText(content string) string {
	content = wordParagraphEnd.ReplaceAllString(content, "\n")
	content = wordTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

// CleanText collapses blank lines and trims every line.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}

// AllowedTypes lists the parseable extensions for error messages.
func AllowedTypes() string {
	return ".pdf, .docx"
}

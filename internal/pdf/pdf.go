package pdf

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/ledongthuc/pdf"
)

const (
	bodyFont   = "Arial"
	bodySize   = 12
	lineHeight = 8
)

// FromText renders plain text into a paginated PDF, one cell per input
// line, 12pt body font. Overwrites outputPath if present.
func FromText(text, outputPath string) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	doc.SetFont(bodyFont, "", bodySize)

	for _, line := range strings.Split(text, "\n") {
		doc.MultiCell(0, lineHeight, line, "", "L", false)
	}

	return doc.OutputFileAndClose(outputPath)
}

// ToText extracts the text of every page and joins pages with newline
// separators. A page whose text cannot be extracted contributes an
// empty string; a single bad page never fails the whole document.
func ToText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := pageText(page)
		if err != nil {
			text = ""
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// pageText extracts one page row by row, preserving line structure.
// The underlying parser panics on some malformed content streams, so
// recover and report it as an extraction error instead.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract page text: %v", r)
		}
	}()

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
	}

	return b.String(), nil
}

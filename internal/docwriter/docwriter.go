package docwriter

import (
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// TranscriptToDocx writes a titled transcript document, one paragraph
// per non-empty transcript line, skipping consecutive duplicates.
func TranscriptToDocx(title, transcript, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	titleRun := doc.AddParagraph("").AddText(title).Font(fontName).Size(titleSize).Color("000000")
	titleRun.Bold(true)
	doc.AddParagraph("")

	var last string
	for _, line := range strings.Split(transcript, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == last {
			continue
		}
		last = trimmed

		p := doc.AddParagraph("")
		p.AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}

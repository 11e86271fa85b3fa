package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
	headSize  = 14
)

// WriteDocx exports the batch's transcripts to a styled .docx document. Each
// target gets a bold heading followed by its transcript paragraphs; failed
// targets are listed with their failure code.
func WriteDocx(b *Batch, title, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	addStyledRun(doc.AddParagraph(""),
		fmt.Sprintf("%s - %d/%d successful", time.Now().Format("2006-01-02 15:04"), b.Successes(), b.Total()),
		false, fontSize)

	for i, o := range b.Outcomes {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("[%d] %s", i+1, o.Target), true, headSize)

		if !o.Success {
			addStyledRun(doc.AddParagraph(""), fmt.Sprintf("FAILED: %s", o.Code), false, fontSize)
			continue
		}

		for _, line := range strings.Split(o.Transcript, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			addStyledRun(doc.AddParagraph(""), line, false, fontSize)
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

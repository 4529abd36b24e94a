// Package pdf renders lookup history into a printable study sheet.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/ymatsuda/wordglass/internal/history"
)

// StudySheetMarkdown renders the lookups as a markdown vocabulary table,
// newest first.
func StudySheetMarkdown(lookups []history.Lookup) string {
	builder := strings.Builder{}
	builder.WriteString("# Vocabulary study sheet\n\n")
	builder.WriteString("| Text | Translation | IPA | Provider | Looked up |\n")
	builder.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, lookup := range lookups {
		ipa := lookup.IPA
		if ipa == "" {
			ipa = "-"
		}
		builder.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			escapePipes(lookup.Text),
			escapePipes(lookup.Translation),
			escapePipes(ipa),
			lookup.Provider,
			lookup.CreatedAt.Format("2006-01-02"),
		))
	}
	return builder.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// WriteStudySheet writes the markdown sheet into dir and converts it to PDF.
// It returns the absolute path of the generated PDF.
func WriteStudySheet(lookups []history.Lookup, dir string) (string, error) {
	markdownPath := filepath.Join(dir, "study_sheet.md")
	if err := os.WriteFile(markdownPath, []byte(StudySheetMarkdown(lookups)), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(StudySheetMarkdown(lookups))); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

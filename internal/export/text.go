// Package export writes generated artifacts to disk: the prompt text file
// and the structured xlsx breakdown of a parsed questionnaire.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const filenameStamp = "20060102_150405"

// PromptFilename returns the timestamped download name for a prompt.
func PromptFilename(now time.Time) string {
	return fmt.Sprintf("survey_prompt_%s.txt", now.Format(filenameStamp))
}

// WorkbookFilename returns the timestamped download name for the analysis
// workbook.
func WorkbookFilename(now time.Time) string {
	return fmt.Sprintf("survey_analysis_%s.xlsx", now.Format(filenameStamp))
}

// WriteText writes content to dir/name, creating dir if needed, and returns
// the full path written.
func WriteText(dir, name, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

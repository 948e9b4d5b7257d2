package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/knock-sh/knock/internal/domain"
)

var (
	commandColor = color.New(color.FgHiGreen)
	dimColor     = color.New(color.Faint)
)

// RenderTranslation prints a translation result. Verbose responses carry
// the command on the first line and the explanation below it.
func RenderTranslation(resp domain.TranslateResponse, mode domain.Mode) {
	if mode != domain.ModeVerbose {
		commandColor.Println(resp.Text)
		return
	}

	lines := strings.Split(resp.Text, "\n")
	commandColor.Println(lines[0])
	explanation := strings.TrimSpace(strings.Join(lines[1:], "\n"))
	if explanation != "" {
		dimColor.Println(explanation)
	}
}

// RenderExplanation prints the explained command followed by the
// explanation text.
func RenderExplanation(command, explanation string) {
	commandColor.Println(command)
	fmt.Println()
	fmt.Println(explanation)
}

// RenderHistory prints history entries, query dimmed and command green.
func RenderHistory(records []domain.HistoryRecord) {
	if len(records) == 0 {
		dimColor.Println("No history found.")
		return
	}
	for _, rec := range records {
		dimColor.Println(rec.Query)
		fmt.Print("  ")
		commandColor.Println(rec.Command)
	}
}

// CommandLine extracts the line saved to history and copied to the
// clipboard: the whole text for standard mode, the first line otherwise.
func CommandLine(text string, mode domain.Mode) string {
	if mode != domain.ModeVerbose {
		return text
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

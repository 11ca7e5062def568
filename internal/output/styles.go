package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Semantic styles for the few human-facing lines the CLI prints.
var (
	// StyleSuccess styles the final confirmation line.
	StyleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	// StyleNoun styles identifiable nouns: project names, paths.
	StyleNoun = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	// StyleDim styles secondary chrome such as next-step hints.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Success prints a styled confirmation line to stdout.
func Success(msg string) {
	fmt.Fprintln(os.Stdout, StyleSuccess.Render("✔")+" "+msg)
}

// Noun renders s in the noun style.
func Noun(s string) string {
	return StyleNoun.Render(s)
}

// Dim renders s in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	fmt.Fprintln(os.Stdout, msg)
}

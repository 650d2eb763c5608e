package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F1FA8C"))
)

// row is one labelled line of text output
type row struct {
	label string
	value string
}

func validateFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// render writes data as json or yaml, or rows as text
func render(cmd *cobra.Command, title string, data any, rows []row) error {
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return encoder.Close()
	}

	styled := isTerminal(out)
	if styled {
		fmt.Fprintln(out, titleStyle.Render(title))
	}
	for _, r := range rows {
		if styled {
			fmt.Fprintf(out, "  %s %s\n", labelStyle.Render(r.label+":"), valueStyle.Render(r.value))
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", r.label, r.value)
	}
	return nil
}

// isTerminal reports whether w is a terminal; colors are disabled otherwise
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

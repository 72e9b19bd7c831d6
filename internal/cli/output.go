package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/handiism/artic-table/internal/artic"
	ioutils "github.com/handiism/artic-table/internal/io"
	"github.com/handiism/artic-table/internal/model"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).MaxWidth(42)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))

	progressStyles = map[artic.ProgressLevel]lipgloss.Style{
		artic.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC")),
		artic.LevelVerbose: dimStyle,
		artic.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		artic.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		artic.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
	}
)

type pageJSON struct {
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	Data       []ioutils.Record `json:"data"`
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatTable, formatJSON)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderTable renders rows with a leading row-number column starting at
// firstRow+1.
func renderTable(rows []model.Artwork, firstRow int) string {
	headers := []string{"#", "ID"}
	for _, c := range model.Columns {
		headers = append(headers, c.Header)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, a := range rows {
		t.Row(append([]string{strconv.Itoa(firstRow + i + 1), strconv.Itoa(a.ID)}, a.Cells()...)...)
	}

	return t.String()
}

func progressLine(event artic.ProgressEvent) string {
	prefix := "  "
	switch event.Level {
	case artic.LevelError:
		prefix = "✗ "
	case artic.LevelWarning:
		prefix = "! "
	case artic.LevelSuccess:
		prefix = "✓ "
	case artic.LevelInfo:
		prefix = "› "
	}
	return progressStyles[event.Level].Render(prefix + event.Message)
}

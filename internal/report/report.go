// Package report renders computed statistics for terminal output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"issue-stats/internal/entities"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Format selects the renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = fmt.Errorf("%w: unknown output format", entities.ErrInvalidArgument)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w %q (want table, json or yaml)", ErrUnknownFormat, s)
	}
}

// Write renders stats to w in the given format.
func Write(w io.Writer, format Format, stats entities.Stats) error {
	switch format {
	case FormatJSON:
		return printJSON(stats, w)
	case FormatYAML:
		return printYaml(stats, w)
	case FormatTable, "":
		return printTable(stats, w)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func printJSON(stats entities.Stats, w io.Writer) error {
	b, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func printYaml(stats entities.Stats, w io.Writer) error {
	b, err := yaml.Marshal(stats)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "---\n%s", b)
	return err
}

func printTable(stats entities.Stats, w io.Writer) error {
	if stats.Placeholder {
		if _, err := fmt.Fprintf(w, "PLACEHOLDER DATA (tracker unavailable: %s)\n", stats.Error); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Total issues", strconv.Itoa(stats.TotalIssues)})
	table.Append([]string{"Resolved", strconv.Itoa(stats.ResolvedIssues)})
	table.Append([]string{"Active", strconv.Itoa(stats.ActiveIssues)})
	table.Append([]string{"Open", strconv.Itoa(stats.OpenIssues)})
	table.Append([]string{"In progress", strconv.Itoa(stats.InProgressIssues)})
	table.Append([]string{"Completion rate", strconv.FormatFloat(stats.CompletionRate, 'f', 1, 64) + "%"})
	if len(stats.Projects) > 0 {
		table.Append([]string{"Projects", strings.Join(stats.Projects, ", ")})
	}

	table.Render()
	return nil
}

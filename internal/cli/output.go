package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-eagle/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printer renders command results in the configured output format.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) print(v any) error {
	switch p.format {
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "table":
		return p.table(v)
	default:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func (p *printer) table(v any) error {
	var headers []string
	var rows [][]string

	switch value := v.(type) {
	case []models.Item:
		headers, rows = itemRows(value)
	case models.Item:
		headers, rows = itemRows([]models.Item{value})
	case []models.Folder:
		headers, rows = folderRows(value)
	case models.Folder:
		headers, rows = folderRows([]models.Folder{value})
	case []string:
		headers = []string{"VALUE"}
		for _, s := range value {
			rows = append(rows, []string{s})
		}
	case string:
		_, err := fmt.Fprintln(p.w, value)
		return err
	case models.ApplicationInfo:
		headers, rows = keyValueRows(
			"version", value.Version,
			"prerelease", value.PrereleaseVersion,
			"build", value.BuildVersion,
			"platform", value.Platform,
			"executable", value.ExecPath,
		)
	case models.LibraryInfo:
		headers, rows = keyValueRows(
			"name", value.Library.Name,
			"path", value.Library.Path,
			"folders", strconv.Itoa(countFolders(value.Folders)),
			"smart folders", strconv.Itoa(len(value.SmartFolders)),
			"tag groups", strconv.Itoa(len(value.TagsGroups)),
			"modified", formatMillis(value.ModificationTime),
			"eagle version", value.ApplicationVersion,
		)
	case actionResult:
		headers, rows = keyValueRows("action", value.Action, "status", value.Status, "id", value.ID)
	default:
		// Anything without a tabular shape falls back to JSON.
		return newPrinter(p.w, "json").print(v)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}

func itemRows(items []models.Item) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "EXT", "SIZE", "DIMENSIONS", "STAR", "TAGS"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		dims := ""
		if it.Width > 0 && it.Height > 0 {
			dims = fmt.Sprintf("%dx%d", it.Width, it.Height)
		}
		size := ""
		if it.Size > 0 {
			size = humanize.Bytes(uint64(it.Size))
		}
		rows = append(rows, []string{
			it.ID, it.Name, it.Ext, size, dims, strconv.Itoa(it.Star), strings.Join(it.Tags, ", "),
		})
	}
	return headers, rows
}

// folderRows flattens the folder tree, indenting names by depth.
func folderRows(folders []models.Folder) ([]string, [][]string) {
	headers := []string{"ID", "NAME", "IMAGES", "DESCRIPTION"}
	var rows [][]string

	var add func(f models.Folder, depth int)
	add = func(f models.Folder, depth int) {
		rows = append(rows, []string{
			f.ID,
			strings.Repeat("  ", depth) + f.Name,
			humanize.Comma(int64(f.ImageCount)),
			f.Description,
		})
		for _, child := range f.Children {
			add(child, depth+1)
		}
	}
	for _, f := range folders {
		add(f, 0)
	}
	return headers, rows
}

func countFolders(folders []models.Folder) int {
	n := 0
	for _, f := range folders {
		f.Walk(func(models.Folder) { n++ })
	}
	return n
}

func keyValueRows(pairs ...string) ([]string, [][]string) {
	rows := make([][]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		rows = append(rows, []string{pairs[i], pairs[i+1]})
	}
	return []string{"FIELD", "VALUE"}, rows
}

func formatMillis(ms int64) string {
	if ms <= 0 {
		return ""
	}
	t := time.UnixMilli(ms)
	return fmt.Sprintf("%s (%s)", t.Format(time.DateTime), humanize.Time(t))
}

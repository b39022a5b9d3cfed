// Package printers renders planner pages on a terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/planner/pkg/theme"
)

// DefaultWidth is the wrap width for free text.
const DefaultWidth = 80

// PrettyPrint writes one page styled with its theme.
type PrettyPrint struct {
	Out    io.Writer
	Theme  theme.Theme
	ShowID bool
	Width  int
}

// New prints page to w.
func New(w io.Writer, page string) *PrettyPrint {
	return &PrettyPrint{Out: w, Theme: theme.ForPage(page), Width: DefaultWidth}
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out)
}

// Title prints a page or section title in the page accent.
func (pp *PrettyPrint) Title(title string) {
	_, _ = fmt.Fprintln(pp.Out, pp.Theme.Title.Render(title))
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	c := color.New(color.Faint)
	_, _ = fmt.Fprint(pp.Out, pp.Theme.Title.Render(title))
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 0, 1:
		_, _ = c.Fprintln(pp.Out, " élément")
	default:
		_, _ = c.Fprintln(pp.Out, " éléments")
	}
}

// Subtitle prints a dimmer heading.
func (pp *PrettyPrint) Subtitle(text string) {
	_, _ = fmt.Fprintln(pp.Out, pp.Theme.Subtitle.Render(text))
}

// Empty marks an empty section.
func (pp *PrettyPrint) Empty(text string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.Out, " %s\n\n", text)
}

// Line prints a plain line.
func (pp *PrettyPrint) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(pp.Out, format+"\n", args...)
}

// Field prints "label: value" with a faint label.
func (pp *PrettyPrint) Field(label string, value any) {
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.Out, "%s: ", label)
	_, _ = fmt.Fprintln(pp.Out, value)
}

// Table prints rows under headers. With ShowID the first column is the id and
// is dimmed.
func (pp *PrettyPrint) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		pp.Empty("aucun")
		return
	}
	table := uitable.New()
	table.MaxColWidth = uint(pp.width() / 2)
	table.Wrap = true

	skip := 0
	if !pp.ShowID && len(headers) > 0 && strings.EqualFold(headers[0], "id") {
		skip = 1
	}
	h := color.New(color.Bold, color.Underline)
	table.AddRow(cells(headers[skip:], func(s string) string { return h.Sprint(s) })...)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, row := range rows {
		out := cells(row[skip:], nil)
		if skip == 0 && pp.ShowID && len(out) > 0 {
			out[0] = y.Sprint(row[0])
		}
		table.AddRow(out...)
	}
	_, _ = fmt.Fprintln(pp.Out, table)
	pp.NewLine()
}

func cells(row []string, style func(string) string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		if style != nil {
			c = style(c)
		}
		out[i] = c
	}
	return out
}

// Wrapped prints free text wrapped to the page width and indented by pad.
func (pp *PrettyPrint) Wrapped(text string, pad uint) {
	w := pp.width() - int(pad)
	if w < 20 {
		w = 20
	}
	_, _ = fmt.Fprintln(pp.Out, indent.String(wordwrap.String(text, w), pad))
}

// Panel frames body under title.
func (pp *PrettyPrint) Panel(title, body string) {
	content := pp.Theme.Panel.Title.Render(title) + "\n" + pp.Theme.Panel.Body.Render(body)
	_, _ = fmt.Fprintln(pp.Out, pp.Theme.Panel.Frame.Render(content))
}

// Bar prints a labelled progress bar for percent in [0,100].
func (pp *PrettyPrint) Bar(label string, percent int, meta string) {
	const cells = 20
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * cells / 100
	bar := pp.Theme.Title.Render(strings.Repeat("█", filled)) + pp.Theme.Muted.Render(strings.Repeat("░", cells-filled))
	_, _ = fmt.Fprintf(pp.Out, "%-8s %s %3d%%  %s\n", label, bar, percent, pp.Theme.Muted.Render(meta))
}

// JSON prints v as indented JSON.
func JSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("printers: encode: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

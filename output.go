package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/crillab/gologic/logic"
)

// A printer writes results on a terminal or a file.
type printer struct {
	w io.Writer

	trueStyle   *color.Color
	falseStyle  *color.Color
	headerStyle *color.Color
	noteStyle   *color.Color
	errorStyle  *color.Color
	dimStyle    *color.Color
}

func newPrinter(w io.Writer, mode string) *printer {
	p := &printer{
		w:           w,
		trueStyle:   color.New(color.FgGreen),
		falseStyle:  color.New(color.FgRed),
		headerStyle: color.New(color.FgCyan, color.Bold),
		noteStyle:   color.New(color.FgYellow),
		errorStyle:  color.New(color.FgRed, color.Bold),
		dimStyle:    color.New(color.FgHiBlack),
	}
	enabled := useColor(w, mode)
	for _, c := range []*color.Color{p.trueStyle, p.falseStyle, p.headerStyle, p.noteStyle, p.errorStyle, p.dimStyle} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// useColor decides whether output on w is colored. In auto mode, it is when
// w is a terminal and NO_COLOR is not set.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

// value renders b as "true" or "false".
func (p *printer) value(b bool) string {
	if b {
		return p.trueStyle.Sprint("true")
	}
	return p.falseStyle.Sprint("false")
}

// letter renders b as "T" or "F".
func (p *printer) letter(b bool) string {
	if b {
		return p.trueStyle.Sprint("T")
	}
	return p.falseStyle.Sprint("F")
}

func (p *printer) note(format string, args ...interface{}) {
	p.noteStyle.Fprintf(p.w, "note: "+format+"\n", args...)
}

func (p *printer) error(err error) {
	p.errorStyle.Fprint(p.w, "error: ")
	fmt.Fprintln(p.w, err)
}

// table writes t with one column per variable, then one per expression.
func (p *printer) table(t *logic.Table) {
	headers := append(append([]string{}, t.Variables...), t.Expressions...)
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	cell := func(i int, s string, width int) string {
		pad := strings.Repeat(" ", widths[i]-width)
		if i == len(t.Variables) {
			return "│ " + s + pad
		}
		return s + pad
	}
	cols := make([]string, len(headers))
	for i, h := range headers {
		cols[i] = cell(i, p.headerStyle.Sprint(h), utf8.RuneCountInString(h))
	}
	p.printf("%s\n", strings.TrimRight(strings.Join(cols, "  "), " "))
	for r, row := range t.Rows {
		for i, v := range t.Variables {
			cols[i] = cell(i, p.letter(t.Assignments[r][v]), 1)
		}
		for j, val := range row {
			i := len(t.Variables) + j
			cols[i] = cell(i, p.letter(val), 1)
		}
		p.printf("%s\n", strings.TrimRight(strings.Join(cols, "  "), " "))
	}
}

// assignment renders a as "A=T B=F", in the order of vars.
func (p *printer) assignment(vars []string, a logic.Assignment) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v + "=" + p.letter(a[v])
	}
	return strings.Join(parts, " ")
}

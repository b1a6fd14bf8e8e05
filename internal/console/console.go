// Package console prints the user-facing, colored output of the tool.
package console

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Level is the kind of a console message.
type Level int

// Console levels.
const (
	Error Level = iota + 1
	Warning
	Success
	Info
)

type levelFormat struct {
	prefix string
	style  color.Style
}

var formats = map[Level]levelFormat{
	Error:   {prefix: "[-]", style: color.New(color.FgRed, color.OpBold)},
	Warning: {prefix: "[!]", style: color.New(color.FgYellow, color.OpBold)},
	Success: {prefix: "[+]", style: color.New(color.FgGreen, color.OpBold)},
	Info:    {prefix: "[*]", style: color.New(color.FgBlue, color.OpBold)},
}

const logo = `
                __
  _____   _____/  |______    _____ _____  ______
 /     \_/ __ \   __\__  \  /     \\__  \ \____ \
|  Y Y  \  ___/|  |  / __ \|  Y Y  \/ __ \|  |_> >
|__|_|  /\___  >__| (____  /__|_|  (____  /   __/
      \/     \/          \/      \/     \/|__|
`

// Printer writes prefixed console lines.
type Printer struct {
	out     io.Writer
	doColor bool
}

// NewPrinter allocates a Printer writing to out.
func NewPrinter(out io.Writer, doColor bool) *Printer {
	return &Printer{out: out, doColor: doColor}
}

func (p *Printer) render(style color.Style, text string) string {
	if !p.doColor {
		return text
	}
	return color.RenderString(style.Code(), text)
}

// Log writes a single line at the given level.
func (p *Printer) Log(level Level, format string, args ...any) {
	f, ok := formats[level]
	if !ok {
		f = formats[Info]
	}
	line := f.prefix + " " + fmt.Sprintf(format, args...)
	fmt.Fprintln(p.out, p.render(f.style, line))
}

// Item writes an indented, uncolored list entry.
func (p *Printer) Item(format string, args ...any) {
	fmt.Fprintln(p.out, "    "+fmt.Sprintf(format, args...))
}

// Banner writes the logo.
func (p *Printer) Banner() {
	fmt.Fprintln(p.out, p.render(color.New(color.FgCyan, color.OpBold), logo))
}

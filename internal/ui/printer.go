package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ColorMode controls when ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// PrinterConfig configures a Printer explicitly; there is no package-level
// color state.
type PrinterConfig struct {
	Mode ColorMode
	Out  io.Writer
	Err  io.Writer
}

// Printer writes colored result lines to stdout and progress/warnings to
// stderr.
type Printer struct {
	out     io.Writer
	err     io.Writer
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	info    *color.Color
}

func NewPrinter(cfg PrinterConfig) *Printer {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}

	p := &Printer{
		out:     cfg.Out,
		err:     cfg.Err,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		info:    color.New(color.FgCyan),
	}

	enabled := false
	switch cfg.Mode {
	case ColorAlways:
		enabled = true
	case ColorNever:
		enabled = false
	default:
		if f, ok := cfg.Out.(*os.File); ok {
			enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	for _, c := range []*color.Color{p.success, p.warn, p.fail, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) Successf(format string, args ...any) {
	p.success.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.warn.Fprintf(p.err, format+"\n", args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.fail.Fprintf(p.err, format+"\n", args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.info.Fprintf(p.err, format+"\n", args...)
}

func (p *Printer) Plainf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// FileList prints a header followed by one indented path per line, truncating
// paths that would overflow the terminal.
func (p *Printer) FileList(header string, paths []string) {
	width := p.width()
	fmt.Fprintln(p.err, header)
	for _, path := range paths {
		line := "  " + path
		if width > 4 && len(line) > width {
			line = line[:width-3] + "..."
		}
		fmt.Fprintln(p.err, line)
	}
}

func (p *Printer) width() int {
	f, ok := p.err.(*os.File)
	if !ok {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

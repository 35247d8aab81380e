package diag

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"choir/internal/source"
)

// tabWidth is the fixed expansion used before measuring column width (§4.2:
// "replace tabs with four spaces ... expand first, then measure").
const tabWidth = "    "

func colorFor(level Level) *color.Color {
	switch level {
	case Note:
		return color.New(color.FgGreen)
	case Warning:
		return color.New(color.FgYellow)
	case Error:
		return color.New(color.FgRed)
	case ICE:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.Reset)
	}
}

func boldColorFor(level Level) *color.Color {
	switch level {
	case Note:
		return color.New(color.FgGreen, color.Bold)
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	case Error:
		return color.New(color.FgRed, color.Bold)
	case ICE:
		return color.New(color.FgMagenta, color.Bold)
	default:
		return color.New(color.Bold)
	}
}

// columnWidth is a Unicode column-width function that maps non-printable
// characters to width 0.
func columnWidth(s string) int {
	w := 0
	for _, r := range s {
		if !unicode.IsPrint(r) {
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func (e *Engine) render(level Level, loc source.Location, msg string) {
	prevNoColor := color.NoColor
	color.NoColor = !e.UseColors()
	defer func() { color.NoColor = prevNoColor }()

	bold := color.New(color.Bold)
	lvlColor := colorFor(level)

	if !loc.Valid() {
		prefix := ""
		if f := e.ctx.File(loc.FileID()); f != nil {
			prefix = f.Path + ": "
		}
		fmt.Fprintf(e.out, "%s%s: %s\n", prefix, lvlColor.Sprint(levelName(level)), msg)
		return
	}

	f := e.ctx.File(loc.FileID())
	seek, ok := e.ctx.Seek(loc)
	if f == nil || !ok {
		fmt.Fprintf(e.out, "%s: %s\n", lvlColor.Sprint(levelName(level)), msg)
		return
	}

	line := string(f.Content[seek.LineStart:seek.LineEnd])
	colStart := int(loc.Pos() - seek.LineStart)
	colEnd := colStart + int(loc.Len())
	if colEnd > len(line) {
		colEnd = len(line)
	}
	if colStart > len(line) {
		colStart = len(line)
	}
	before := strings.ReplaceAll(line[:colStart], "\t", tabWidth)
	rangeText := strings.ReplaceAll(line[colStart:colEnd], "\t", tabWidth)
	after := strings.ReplaceAll(line[colEnd:], "\t", tabWidth)

	header := bold.Sprint(fmt.Sprintf("%s:%d:%d: ", f.Path, seek.Line, seek.Col))
	levelPart := lvlColor.Sprint(levelName(level) + ":")
	msgPart := bold.Sprint(" " + msg)
	fmt.Fprintf(e.out, "%s%s%s\n", header, levelPart, msgPart)

	gutter := fmt.Sprintf(" %d | ", seek.Line)
	fmt.Fprintf(e.out, "%s%s%s%s\n", gutter, before, boldColorFor(level).Sprint(rangeText), after)

	underlineLen := columnWidth(rangeText)
	if underlineLen == 0 {
		underlineLen = 1
	}
	padding := strings.Repeat(" ", len(gutter)+columnWidth(before))
	underline := strings.Repeat("~", underlineLen)
	fmt.Fprintf(e.out, "%s%s\n", padding, lvlColor.Sprint(underline))
}

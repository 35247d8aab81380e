package lexer

import (
	"fmt"

	"choir/internal/source"

	"fortio.org/safecast"
)

// Cursor is a byte-offset position within a single file's content buffer.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32
}

// NewCursor creates a cursor positioned at the start of f's content.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("lexer: file content length overflow: %w", err))
	}
	return Cursor{File: f, Off: 0, Limit: limit}
}

// EOF reports whether the cursor has consumed the entire range.
func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and next byte, or ok=false if fewer than two
// bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Peek3 returns the current, next, and following byte, or ok=false if fewer
// than three bytes remain.
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if c.Off+2 >= c.Limit {
		return 0, 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], c.File.Content[c.Off+2], true
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the current byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark is a saved cursor offset, used to compute a Location once a token's
// extent is known.
type Mark uint32

// Mark saves the current offset.
func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// Reset rewinds the cursor to a previously saved mark.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

// LocationFrom packs the byte range [m, current offset) into a Location.
// The length saturates at the 16-bit maximum; I1 (pos+len <= file size)
// still holds since the range itself never exceeds the file content.
func (c *Cursor) LocationFrom(m Mark) source.Location {
	length := c.Off - uint32(m)
	if length > 0xFFFF {
		length = 0xFFFF
	}
	return source.NewLocation(c.File.ID, uint32(m), uint16(length))
}

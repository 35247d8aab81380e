package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"fortio.org/safecast"
)

// maxFiles is the dense file_id capacity: file_id is a u16, and id 0 is
// reserved, so at most 65535 files may be registered (I4, C4).
const maxFiles = 1<<16 - 1

// TooManyFiles is returned by GetFile when registering a new file would
// exceed the 65,535-file capacity.
type TooManyFiles struct{}

func (TooManyFiles) Error() string {
	return fmt.Sprintf("source: cannot register more than %d files", maxFiles)
}

// IoError wraps a file load failure. It is always fatal to the driver.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string { return fmt.Sprintf("source: %s: %v", e.Path, e.Err) }
func (e *IoError) Unwrap() error { return e.Err }

// Context is the process-wide registry of source files: it canonicalizes
// paths, loads contents, and assigns dense file_ids. Mutations serialize on
// an internal lock; the color flag is a lock-free atomic.
type Context struct {
	mu      sync.Mutex
	files   []*File
	index   map[string]FileID // canonical path -> id
	baseDir string

	diags  Engine
	colors atomic.Bool
}

// New creates an empty Context. There is no other process-wide singleton
// state to initialize in this core; higher layers that need a one-time
// backend init hook should do it before or after calling New.
func New() *Context {
	return &Context{
		index: make(map[string]FileID),
	}
}

// SetBaseDir sets the directory relative paths are resolved against.
func (c *Context) SetBaseDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseDir = dir
}

// BaseDir returns the configured base directory, defaulting to the process
// working directory.
func (c *Context) BaseDir() string {
	c.mu.Lock()
	dir := c.baseDir
	c.mu.Unlock()
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return dir
}

// SetDiags installs the diagnostics engine. It is a programming error to
// call Diags before this, and Diags panics in that case.
func (c *Context) SetDiags(e Engine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = e
}

// Diags returns the installed engine, panicking if none was set.
func (c *Context) Diags() Engine {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.diags == nil {
		panic("source: Diags called before SetDiags")
	}
	return c.diags
}

// EnableColors sets the color-output flag.
func (c *Context) EnableColors(on bool) { c.colors.Store(on) }

// UseColors reports the current color-output flag.
func (c *Context) UseColors() bool { return c.colors.Load() }

// GetFile canonicalizes path; if it is already registered it returns the
// existing File, otherwise it loads the file from disk, assigns the next
// file_id, and registers it.
func (c *Context) GetFile(path string) (*File, error) {
	if !filepath.IsAbs(path) {
		c.mu.Lock()
		dir := c.baseDir
		c.mu.Unlock()
		if dir != "" {
			path = filepath.Join(dir, path)
		}
	}
	norm := normalizePath(path)

	c.mu.Lock()
	if id, ok := c.index[norm]; ok {
		f := c.files[id]
		c.mu.Unlock()
		return f, nil
	}
	c.mu.Unlock()

	// Load outside the lock: only get_file blocks on I/O (spec §5).
	content, err := os.ReadFile(path) // #nosec G304 -- path supplied by caller/driver
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}

	return c.addLocked(norm, content, flags)
}

// AddVirtual registers in-memory content (stdin, tests, generated code)
// under the given display name.
func (c *Context) AddVirtual(name string, content []byte) (*File, error) {
	norm := normalizePath(name)

	c.mu.Lock()
	if id, ok := c.index[norm]; ok {
		f := c.files[id]
		c.mu.Unlock()
		return f, nil
	}
	c.mu.Unlock()

	return c.addLocked(norm, content, FileVirtual)
}

func (c *Context) addLocked(norm string, content []byte, flags FileFlags) (*File, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check: another goroutine may have registered this path while we
	// were loading outside the lock.
	if id, ok := c.index[norm]; ok {
		return c.files[id], nil
	}

	if len(c.files) >= maxFiles {
		return nil, TooManyFiles{}
	}
	idx, err := safecast.Conv[uint16](len(c.files) + 1)
	if err != nil {
		panic(fmt.Errorf("source: file index overflow: %w", err))
	}
	newID := FileID(idx) // ids are 1-based; 0 is reserved

	f := &File{
		ID:      newID,
		Path:    norm,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	}
	c.files = append(c.files, f)
	c.index[norm] = newID
	return f, nil
}

// File returns the registered file for id, or nil if id is unregistered.
func (c *Context) File(id FileID) *File {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id == 0 || int(id) > len(c.files) {
		return nil
	}
	return c.files[id-1]
}

// Seek resolves a Location to a line/column and the byte bounds of its
// enclosing line (C5). It reports false if the location's file is
// unregistered.
func (c *Context) Seek(loc Location) (SeekResult, bool) {
	f := c.File(loc.FileID())
	if f == nil {
		return SeekResult{}, false
	}
	start := toLineCol(f.LineIdx, loc.Pos())
	lineStart, lineEnd := lineBounds(f.LineIdx, uint32(len(f.Content)), loc.Pos())
	return SeekResult{
		Line:      start.Line,
		Col:       start.Col,
		LineStart: lineStart,
		LineEnd:   lineEnd,
	}, true
}

// Text extracts the substring denoted by loc from its file, or "" if the
// location or file is invalid.
func (c *Context) Text(loc Location) string {
	if !loc.Valid() {
		return ""
	}
	f := c.File(loc.FileID())
	if f == nil {
		return ""
	}
	end := loc.End()
	if end > uint32(len(f.Content)) {
		end = uint32(len(f.Content))
	}
	if loc.Pos() > end {
		return ""
	}
	return string(f.Content[loc.Pos():end])
}

package source

// FileID densely identifies a registered source file. The zero value never
// denotes a real file (the context reserves it).
type FileID uint16

// FileFlags records how a file's bytes were transformed on load.
type FileFlags uint8

const (
	// FileVirtual marks a file added from memory rather than disk (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is an immovable record owning a normalized path and an immutable
// contents buffer. There is no separate display-name field: Path is also
// what diagnostics print. Created only by a Context; destroyed with it.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol is a human-readable, 1-based position within a file.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Level classifies a diagnostic's severity. It is anchored here, rather than
// in the diag package, so that Context can hold an Engine reference without
// an import cycle: diag imports source for Location, so source cannot import
// diag back. Package diag aliases this type (type Level = source.Level).
type Level uint8

const (
	LevelNote Level = iota
	LevelWarning
	LevelError
	LevelICE
)

func (l Level) String() string {
	switch l {
	case LevelNote:
		return "note"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelICE:
		return "internal compiler error"
	default:
		return "unknown"
	}
}

// Engine is the subset of the diagnostics engine that the file registry
// needs to hold a reference to. diag.Engine implements it.
type Engine interface {
	Report(level Level, loc Location, msg string)
	HasErrors() bool
}

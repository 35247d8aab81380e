// Package diag implements the thread-safe diagnostics engine: source-anchored,
// optionally colored, caret-underlined messages with error-limit throttling.
//
// The data model is intentionally small: a diagnostic is just
// {level, location, message} (source.Level, source.Location, string). There
// is no separate Bag/Reporter/Fix machinery — report is the entire surface,
// and it renders immediately under the engine's lock rather than batching
// for later sorting. Each Report call takes the lock on its own: a Note and
// its parent are two separate calls, so under concurrent reporting another
// goroutine's diagnostic can be rendered between them.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"choir/internal/source"
)

// osExit is a seam for tests to intercept the ICE-triggered process abort.
var osExit = os.Exit

// Engine is a thread-safe diagnostics sink. report(diag) serializes on a
// single mutex; the error flag and throttled state are additionally exposed
// as atomics so HasErrors can be polled without contention.
type Engine struct {
	mu  sync.Mutex
	out io.Writer
	ctx *source.Context

	errorLimit uint32 // 0 disables throttling
	printed    uint32
	hasParent  bool // whether a non-Note diagnostic has been reported yet

	colors    atomic.Bool
	throttled atomic.Bool
	errorFlag atomic.Bool
}

// NewEngine returns an Engine that renders to out, resolving locations
// through ctx. errorLimit of 0 disables throttling.
func NewEngine(out io.Writer, ctx *source.Context, errorLimit uint32) *Engine {
	return &Engine{out: out, ctx: ctx, errorLimit: errorLimit}
}

// EnableColors toggles colored rendering.
func (e *Engine) EnableColors(on bool) { e.colors.Store(on) }

// UseColors reports whether colored rendering is enabled.
func (e *Engine) UseColors() bool { return e.colors.Load() }

// HasErrors reports whether an Error or ICE has ever been reported (I5: this
// flag is monotone and never clears).
func (e *Engine) HasErrors() bool { return e.errorFlag.Load() }

// Throttled reports whether the engine has crossed its error limit and is
// suppressing further output.
func (e *Engine) Throttled() bool { return e.throttled.Load() }

// Report renders a diagnostic. It is safe for concurrent use. A Note
// reported before any non-Note diagnostic is an invariant violation and
// panics (the engine never emits an orphan Note); once some non-Note has
// been reported, a Note is accepted without checking which diagnostic it
// follows.
func (e *Engine) Report(level Level, loc source.Location, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if level == Error || level == ICE {
		e.errorFlag.Store(true)
	}

	if level == Note {
		if !e.hasParent {
			panic("diag: orphan Note reported with no preceding non-Note diagnostic")
		}
	} else {
		e.hasParent = true
	}

	if e.throttled.Load() {
		return
	}

	if e.errorLimit > 0 && e.printed >= e.errorLimit {
		e.throttled.Store(true)
		e.renderThrottleNotice()
		return
	}

	e.render(level, loc, msg)
	e.printed++

	if level == ICE {
		osExit(2)
	}
}

func (e *Engine) renderThrottleNotice() {
	fmt.Fprintf(e.out, "note: too many diagnostics (limit %d), suppressing further output\n", e.errorLimit)
}

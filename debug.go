package grove

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// globalDebug enables the tree and registry checks below. It is set by
// Simulation.SetDebugMode.
var globalDebug bool

// debugLogger receives debug warnings that have no simulation at hand.
var debugLogger = zerolog.Nop()

// debugStats holds per-frame timing and lifecycle counts.
// Only populated when the simulation is in debug mode.
type debugStats struct {
	logicTime time.Duration
	files     int
	expired   int
	revived   int
	pending   int
}

// debugLog writes frame stats at debug level.
func (s *Simulation) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.log.Debug().
		Dur("logic", stats.logicTime).
		Int("files", stats.files).
		Int("expired", stats.expired).
		Int("revived", stats.revived).
		Int("pending", stats.pending).
		Msg("frame")
}

// debugCheckDisposed panics with a descriptive message when a disposed file
// is used in a tree operation.
func debugCheckDisposed(f *File, op string) {
	if f.disposed {
		panic(fmt.Sprintf("grove debug: %s on disposed file %q (ID %d)", op, f.path, f.ID))
	}
}

// debugCheckFileCount warns if a directory has more than 1000 files.
const debugMaxFileCount = 1000

func debugCheckFileCount(d *Dir) {
	if len(d.files) > debugMaxFileCount {
		debugLogger.Warn().
			Str("dir", d.Path).
			Int("files", len(d.files)).
			Int("threshold", debugMaxFileCount).
			Msg("directory file count exceeds threshold")
	}
}

// debugCheckRegistrySize warns if the pending-removal registry grows past
// 1000 entries, which usually means the collector is not running.
const debugMaxPending = 1000

func debugCheckRegistrySize(r *Registry) {
	if r.Len() > debugMaxPending {
		debugLogger.Warn().
			Int("pending", r.Len()).
			Int("threshold", debugMaxPending).
			Msg("pending removals exceed threshold")
	}
}

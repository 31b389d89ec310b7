package grove

import (
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
)

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the simulation's logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// WithMetrics reports lifecycle counts to m.
func WithMetrics(m *Metrics) Option {
	return func(s *Simulation) { s.metrics = m }
}

// WithEventSink forwards lifecycle transitions to sink.
func WithEventSink(sink EventSink) Option {
	return func(s *Simulation) { s.sink = sink }
}

// WithFontManager gives every new file a labeler from fm.
func WithFontManager(fm *FontManager) Option {
	return func(s *Simulation) { s.fonts = fm }
}

// Simulation is the top-level object that owns the tracked files, their
// directories and the pending-removal registry.
//
// A frame is: Touch for each activity event, then Update, then Sweep.
// None of it is safe for concurrent use.
type Simulation struct {
	settings Settings
	registry *Registry

	files map[string]*File
	order []*File // creation order
	dirs  map[string]*Dir

	fonts   *FontManager
	log     zerolog.Logger
	metrics *Metrics
	sink    EventSink
	debug   bool

	nextTag  uint32
	selected *File

	revived int // since the last Update
}

// NewSimulation creates an empty simulation with a fresh registry.
func NewSimulation(settings Settings, opts ...Option) *Simulation {
	if settings.FadeEase == nil {
		settings.FadeEase = DefaultSettings().FadeEase
	}
	s := &Simulation{
		settings: settings,
		registry: NewRegistry(),
		files:    make(map[string]*File),
		dirs:     make(map[string]*Dir),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.SetDebugMode(settings.Debug)
	return s
}

// Settings returns the live settings shared by every file.
func (s *Simulation) Settings() *Settings {
	return &s.settings
}

// Registry returns the pending-removal registry.
func (s *Simulation) Registry() *Registry {
	return s.registry
}

// SetDebugMode enables per-frame stats logging and extra checks.
func (s *Simulation) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		debugLogger = s.log
	} else {
		debugLogger = zerolog.Nop()
	}
}

// File returns the file tracked at path, or nil.
func (s *Simulation) File(path string) *File {
	return s.files[path]
}

// Files returns the tracked files in creation order. The returned slice MUST
// NOT be mutated by the caller.
func (s *Simulation) Files() []*File {
	return s.order
}

// NumFiles returns the number of tracked files.
func (s *Simulation) NumFiles() int {
	return len(s.order)
}

// Dir returns the directory container for path, creating it at the origin
// if needed.
func (s *Simulation) Dir(path string) *Dir {
	d, ok := s.dirs[path]
	if !ok {
		d = NewDir(path, Vec2{}, s.settings.FileDiameter)
		s.dirs[path] = d
	}
	return d
}

// Dirs returns every directory container by path.
func (s *Simulation) Dirs() map[string]*Dir {
	return s.dirs
}

// Touch records activity on path with the given color, creating the file on
// first sight. Returns the file.
func (s *Simulation) Touch(path string, colour Color) *File {
	f, ok := s.files[path]
	if !ok {
		f = s.newFile(path)
	}

	wasExpiring := f.expiring
	f.Touch(colour)
	if wasExpiring && !f.expiring {
		s.revived++
		s.metrics.countRevived()
		s.log.Debug().Str("path", f.path).Float64("elapsed", f.elapsed).Msg("file revived")
		s.emit(EventFileRevived, f)
	}
	return f
}

// Remove starts removal of the file at path. Reports whether it exists.
func (s *Simulation) Remove(path string, force bool) bool {
	f, ok := s.files[path]
	if !ok {
		return false
	}
	f.Remove(force)
	return true
}

// Rename moves the file at oldPath to newPath, re-keying the index and
// re-anchoring it in the directory for newPath. Reports false if oldPath is
// unknown or newPath is already tracked.
func (s *Simulation) Rename(oldPath, newPath string) bool {
	f, ok := s.files[oldPath]
	if !ok {
		return false
	}
	if oldPath == newPath {
		return true
	}
	if _, taken := s.files[newPath]; taken {
		return false
	}

	delete(s.files, oldPath)
	f.SetPath(newPath)
	f.key = newPath
	s.files[newPath] = f

	d := s.Dir(f.dirName)
	d.AddFile(f)
	f.SetDistance(d.Radius() + s.settings.FileDiameter*float64(1+pathDepth(newPath)))

	s.log.Debug().Str("from", oldPath).Str("to", newPath).Msg("file renamed")
	return true
}

// Select makes the file at path the only selected file. An empty or unknown
// path clears the selection. Returns the selected file, or nil.
func (s *Simulation) Select(path string) *File {
	if s.selected != nil {
		s.selected.SetSelected(false)
		s.selected = nil
	}
	if f, ok := s.files[path]; ok {
		f.SetSelected(true)
		s.selected = f
	}
	return s.selected
}

// Update advances every file by dt seconds, in creation order.
func (s *Simulation) Update(dt float64) {
	var stats debugStats
	var start time.Time
	if s.debug {
		start = time.Now()
	}

	for _, f := range s.order {
		wasExpiring := f.expiring
		f.Logic(dt)
		if !wasExpiring && f.expiring {
			stats.expired++
			s.metrics.countExpired()
			s.log.Debug().Str("path", f.path).Bool("removing", f.removing).Msg("file expired")
			s.emit(EventFileExpired, f)
		}
	}

	s.metrics.observe(len(s.order), s.registry.Len())

	if s.debug {
		debugCheckRegistrySize(s.registry)
		stats.logicTime = time.Since(start)
		stats.files = len(s.order)
		stats.pending = s.registry.Len()
		stats.revived = s.revived
		s.debugLog(stats)
	}
	s.revived = 0
}

// Sweep finalizes every file in the registry: each one leaves the registry,
// its directory and the simulation, and is disposed. Returns the number of
// files removed.
func (s *Simulation) Sweep() int {
	pending := s.registry.Drain()
	for _, f := range pending {
		s.finalize(f)
	}
	if len(pending) > 0 {
		s.metrics.observe(len(s.order), s.registry.Len())
	}
	return len(pending)
}

// Close sweeps pending removals, disposes every remaining file and leaves
// the simulation empty.
func (s *Simulation) Close() {
	swept := s.Sweep()
	remaining := len(s.order)
	for len(s.order) > 0 {
		s.finalize(s.order[0])
	}
	s.log.Info().Int("swept", swept).Int("disposed", remaining).Msg("simulation closed")
	s.metrics.observe(0, 0)
}

func (s *Simulation) newFile(path string) *File {
	dirName, _, ext := SplitPath(path)
	d := s.Dir(dirName)

	s.nextTag++
	f := NewFile(path, RestingColor(ext), Vec2{}, s.nextTag, s.registry, &s.settings)
	f.key = path

	angle := float64(xxhash.Sum64String(path)%3600) / 3600 * 2 * math.Pi
	f.SetDestination(Vec2{math.Cos(angle), math.Sin(angle)})
	f.SetDistance(d.Radius() + s.settings.FileDiameter*float64(1+pathDepth(path)))

	d.AddFile(f)
	if s.fonts != nil {
		f.AttachLabeler(s.fonts.Grab())
	}

	s.files[path] = f
	s.order = append(s.order, f)

	s.log.Debug().Str("path", path).Uint32("id", f.ID).Msg("file created")
	s.emit(EventFileCreated, f)
	return f
}

func (s *Simulation) finalize(f *File) {
	if s.files[f.key] == f {
		delete(s.files, f.key)
	}
	for i, c := range s.order {
		if c == f {
			copy(s.order[i:], s.order[i+1:])
			s.order[len(s.order)-1] = nil
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
	if s.selected == f {
		s.selected = nil
	}

	elapsed := f.elapsed
	f.Dispose()

	s.metrics.countRemoved()
	s.log.Debug().Str("path", f.path).Msg("file removed")
	s.emitEvent(LifecycleEvent{Type: EventFileRemoved, FileID: f.ID, Path: f.path, Elapsed: elapsed})
}

func (s *Simulation) emit(t LifecycleEventType, f *File) {
	s.emitEvent(LifecycleEvent{Type: t, FileID: f.ID, Path: f.path, Elapsed: f.elapsed})
}

func (s *Simulation) emitEvent(e LifecycleEvent) {
	if s.sink != nil {
		s.sink.EmitLifecycle(e)
	}
}

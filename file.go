package grove

import "fmt"

// fileIDCounter is a plain counter (no atomic, the frame loop is single-threaded).
var fileIDCounter uint32

func nextFileID() uint32 {
	fileIDCounter++
	return fileIDCounter
}

// State is the lifecycle state of a file.
type State uint8

const (
	StateActive     State = iota // touched recently, fully visible
	StateIdleFading              // past the idle time, fading out
	StateExpiring                // fully faded, waiting in the registry
	StateRemoved                 // disposed by the collector
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateIdleFading:
		return "idle-fading"
	case StateExpiring:
		return "expiring"
	case StateRemoved:
		return "removed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// File is one tracked file: its identity, motion toward a target anchored on
// its directory, activity coloring and idle lifecycle.
//
// Files are driven by an external frame loop: Touch on activity, Logic once
// per frame. A file that stays untouched for IdleTime plus one second marks
// itself expiring and joins the shared Registry, where a collector finds it.
// Touching it again takes it back out.
type File struct {
	Pawn

	ID  uint32
	Tag uint32

	// Identity
	path    string
	dirName string
	name    string
	ext     string

	// Motion
	pos      Vec2
	dest     Vec2
	distance float64
	speed    float64

	// Activity
	lastAction float64
	touchColor Color
	baseColor  Color

	// Lifecycle
	expiring bool
	removing bool
	disposed bool

	dir      Container
	registry *Registry
	settings *Settings
	label    Labeler

	key string // Simulation index key
}

// NewFile creates a hidden file for path with the given resting color and
// initial offset. Expiring files are added to reg; settings are read live.
func NewFile(path string, colour Color, pos Vec2, tag uint32, reg *Registry, settings *Settings) *File {
	if reg == nil {
		panic("grove: NewFile requires a registry")
	}
	if settings == nil {
		s := DefaultSettings()
		settings = &s
	}
	f := &File{
		ID:        nextFileID(),
		Tag:       tag,
		pos:       pos,
		speed:     settings.FileSpeed,
		baseColor: colour,
		registry:  reg,
		settings:  settings,
	}
	f.initPawn(settings.NameTime)
	f.SetPath(path)
	return f
}

// --- Identity ---

// SetPath replaces the file's path and everything derived from it. Files
// owned by a Simulation should be renamed with Simulation.Rename so its
// index and directories follow.
func (f *File) SetPath(p string) {
	dir, base, ext := SplitPath(p)
	f.path, f.dirName, f.name, f.ext = p, dir, base, ext
}

// Path returns the full path identifying the file.
func (f *File) Path() string {
	return f.path
}

// DirName returns the directory part of the path, with its trailing slash.
func (f *File) DirName() string {
	return f.dirName
}

// Name returns the base name of the file.
func (f *File) Name() string {
	return f.name
}

// Ext returns the file extension without the dot, or "".
func (f *File) Ext() string {
	return f.ext
}

// --- Hierarchy ---

// SetDir sets the container the file is anchored to. The container keeps
// ownership of the file; use Dir.AddFile to attach a file to a directory.
// Panics if c is nil.
func (f *File) SetDir(c Container) {
	if c == nil {
		panic("grove: cannot attach file to nil container")
	}
	f.dir = c
}

// Dir returns the container the file is anchored to, or nil.
func (f *File) Dir() Container {
	return f.dir
}

func (f *File) mustHaveDir(op string) {
	if f.dir == nil {
		panic(fmt.Sprintf("grove: %s on file %q with no directory", op, f.path))
	}
}

// --- Lifecycle ---

// LastAction returns the local clock time of the last touch.
func (f *File) LastAction() float64 {
	return f.lastAction
}

// IsExpiring reports whether the file is waiting in the registry.
func (f *File) IsExpiring() bool {
	return f.expiring
}

// IsRemoving reports whether the file was force-removed.
func (f *File) IsRemoving() bool {
	return f.removing
}

// IsDisposed reports whether the collector has finalized the file.
func (f *File) IsDisposed() bool {
	return f.disposed
}

// State reports where the file is in its lifecycle.
func (f *File) State() State {
	switch {
	case f.disposed:
		return StateRemoved
	case f.expiring:
		return StateExpiring
	case f.elapsed-f.lastAction >= f.settings.IdleTime:
		return StateIdleFading
	default:
		return StateActive
	}
}

// Touch records activity on the file: it resets the idle timer, flashes the
// touch color, shows the label and makes the file visible. An expiring file
// is taken back out of the registry. Touching a removing file does nothing.
func (f *File) Touch(colour Color) {
	if f.removing {
		return
	}

	f.lastAction = f.elapsed
	f.touchColor = colour

	if f.expiring {
		f.registry.Remove(f)
		f.expiring = false
	}

	f.ShowName()
	f.SetHidden(false)
	if f.dir != nil {
		f.dir.FileUpdated(true)
	}
}

// Remove fast-forwards the file to the end of its idle time so it fades out
// over the next second. With force the file is also marked removing: it stops
// accepting touches and expires on its next frame without fading.
func (f *File) Remove(force bool) {
	f.lastAction = f.elapsed - f.settings.IdleTime
	if force {
		f.removing = true
	}
}

// Logic advances the file by dt seconds: clock, motion and expiry.
// Panics if the file has no parent container.
func (f *File) Logic(dt float64) {
	f.mustHaveDir("Logic")

	f.Pawn.logic(dt)
	f.move(dt)

	if !f.expiring && (f.removing || f.elapsed-f.lastAction >= f.settings.IdleTime+fadeWindow) {
		f.expiring = true
		f.registry.Add(f)
	}

	// Hidden files never age.
	if f.hidden && !f.removing {
		f.elapsed = 0
	}
}

// SetHidden shows or hides the file. Becoming visible is reported to the
// parent container.
func (f *File) SetHidden(hidden bool) {
	if f.hidden && !hidden && f.dir != nil {
		f.dir.AddVisible()
	}
	f.Pawn.setHidden(hidden)
}

// SetSelected selects or deselects the file. Selected files are drawn white
// with a large label.
func (f *File) SetSelected(selected bool) {
	if f.label != nil && f.selected == selected {
		return
	}
	f.Pawn.setSelected(selected)
	f.sizeLabel()
}

// AttachLabeler hands the file the labeler used to draw its name. The file
// releases it when disposed.
func (f *File) AttachLabeler(l Labeler) {
	if f.label != nil && f.label != l {
		f.label.Release()
	}
	f.label = l
	f.sizeLabel()
}

// Labeler returns the file's labeler, or nil.
func (f *File) Labeler() Labeler {
	return f.label
}

func (f *File) sizeLabel() {
	if f.label == nil {
		return
	}
	if f.selected {
		f.label.SetSize(LabelLarge)
	} else {
		f.label.SetSize(LabelSmall)
	}
}

// --- Disposal ---

// Dispose finalizes the file: it leaves the registry and its parent container
// and releases its labeler. Only the collector should call it. Parents that do
// not implement FileRemover only lose the back-reference; their membership
// is the caller's to clean up.
func (f *File) Dispose() {
	if f.disposed {
		return
	}
	if f.registry != nil {
		f.registry.Remove(f)
	}
	if r, ok := f.dir.(FileRemover); ok && r != nil {
		r.RemoveFile(f)
	}
	if f.label != nil {
		f.label.Release()
		f.label = nil
	}
	f.disposed = true
	f.expiring = false
	f.dir = nil
	f.registry = nil
}

package grove

// Container is the parent a file is anchored to. The container owns the
// file's membership; a file only keeps a back-reference to it.
type Container interface {
	// Position is the anchor that file offsets are relative to.
	Position() Vec2
	Radius() float64
	// AddVisible records that one more child became visible.
	AddVisible()
	// FileUpdated is called whenever a child file is touched.
	FileUpdated(updated bool)
}

// FileRemover is implemented by containers that track their files. Dispose
// uses it to detach a file from its parent.
type FileRemover interface {
	RemoveFile(f *File)
}

// Dir is a directory container holding the files directly inside it.
type Dir struct {
	Path string

	pos     Vec2
	radius  float64
	files   []*File
	visible int
	updated bool
}

// NewDir creates an empty directory container anchored at pos.
func NewDir(path string, pos Vec2, radius float64) *Dir {
	return &Dir{Path: path, pos: pos, radius: radius}
}

// Position returns the directory's anchor.
func (d *Dir) Position() Vec2 {
	return d.pos
}

// SetPosition moves the directory's anchor. Files follow on their next frame.
func (d *Dir) SetPosition(p Vec2) {
	d.pos = p
}

// Radius returns the directory's radius.
func (d *Dir) Radius() float64 {
	return d.radius
}

// SetRadius sets the directory's radius.
func (d *Dir) SetRadius(r float64) {
	d.radius = r
}

// AddVisible increments the visible-child counter.
func (d *Dir) AddVisible() {
	d.visible++
}

// Visible returns the number of children that became visible.
func (d *Dir) Visible() int {
	return d.visible
}

// FileUpdated marks the directory as having recent file activity.
func (d *Dir) FileUpdated(updated bool) {
	d.updated = d.updated || updated
}

// Updated reports whether a file was touched since the last call, and
// resets the flag.
func (d *Dir) Updated() bool {
	u := d.updated
	d.updated = false
	return u
}

// AddFile attaches f to the directory. If f already belongs to another
// container it is detached from it first. Panics if f is nil.
func (d *Dir) AddFile(f *File) {
	if f == nil {
		panic("grove: cannot add nil file")
	}
	if globalDebug {
		debugCheckDisposed(f, "AddFile")
	}
	if f.dir == Container(d) {
		return
	}
	if prev, ok := f.dir.(*Dir); ok && prev != nil {
		prev.removeFileByPtr(f)
	}
	f.SetDir(d)
	d.files = append(d.files, f)
	if globalDebug {
		debugCheckFileCount(d)
	}
}

// RemoveFile detaches f from the directory.
// Panics if f does not belong to d.
func (d *Dir) RemoveFile(f *File) {
	if f.dir != Container(d) {
		panic("grove: file's directory is not this directory")
	}
	d.removeFileByPtr(f)
	f.dir = nil
}

// Files returns the directory's files. The returned slice MUST NOT be
// mutated by the caller.
func (d *Dir) Files() []*File {
	return d.files
}

// NumFiles returns the number of files in the directory.
func (d *Dir) NumFiles() int {
	return len(d.files)
}

// removeFileByPtr removes f from d.files without clearing f.dir.
func (d *Dir) removeFileByPtr(f *File) {
	for i, c := range d.files {
		if c == f {
			copy(d.files[i:], d.files[i+1:])
			d.files[len(d.files)-1] = nil
			d.files = d.files[:len(d.files)-1]
			return
		}
	}
}

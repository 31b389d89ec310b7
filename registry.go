package grove

// Registry is the set of files that have fully faded out and wait for the
// collector. It is owned by a Simulation and shared by all of its files.
//
// Entries keep their insertion order. Membership is by identity and a file
// is listed at most once. The registry never disposes files itself.
//
// Like the frame loop that drives it, a Registry is not safe for concurrent
// use.
type Registry struct {
	files []*File
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends f if it is not already present. Reports whether f was added.
func (r *Registry) Add(f *File) bool {
	if r.Contains(f) {
		return false
	}
	r.files = append(r.files, f)
	return true
}

// Remove drops the first occurrence of f. Absent files are ignored.
// Reports whether f was removed.
func (r *Registry) Remove(f *File) bool {
	for i, c := range r.files {
		if c == f {
			copy(r.files[i:], r.files[i+1:])
			r.files[len(r.files)-1] = nil
			r.files = r.files[:len(r.files)-1]
			return true
		}
	}
	return false
}

// Contains reports whether f is registered.
func (r *Registry) Contains(f *File) bool {
	for _, c := range r.files {
		if c == f {
			return true
		}
	}
	return false
}

// Len returns the number of registered files.
func (r *Registry) Len() int {
	return len(r.files)
}

// Files returns the registered files in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (r *Registry) Files() []*File {
	return r.files
}

// Drain empties the registry and returns what it held, in insertion order.
func (r *Registry) Drain() []*File {
	out := make([]*File, len(r.files))
	copy(out, r.files)
	clear(r.files)
	r.files = r.files[:0]
	return out
}

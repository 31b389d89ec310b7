package grove

import "strings"

// SplitPath decomposes a file path into its directory (including the trailing
// slash), base name and extension. The extension is the text after the last
// dot of the base name, and is empty when that dot is the first or last
// character of the name. Degenerate paths never fail: a path without a slash
// is all base name, and a trailing slash leaves an empty base name.
func SplitPath(p string) (dir, base, ext string) {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		dir = p[:i+1]
		base = p[i+1:]
	} else {
		base = p
	}

	if dot := strings.LastIndexByte(base, '.'); dot > 0 && dot < len(base)-1 {
		ext = base[dot+1:]
	}
	return dir, base, ext
}

// pathDepth counts the directory components of a path.
func pathDepth(p string) int {
	return strings.Count(p, "/")
}

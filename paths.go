package masume

import "path/filepath"

// resolvePath anchors a cross-file reference at the directory of the
// file that made it. Absolute references pass through unchanged. The
// result is only as absolute as baseDir itself; parsing a map by a
// relative path yields paths relative to the same origin.
func resolvePath(baseDir, ref string) string {
	ref = filepath.FromSlash(ref)
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(baseDir, ref)
}

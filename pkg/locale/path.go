package locale

import "strings"

// Localize rewrites path so that it points at the same page in target.
//
// The first segment is replaced when it is a supported locale, otherwise
// target is inserted in front. A bare locale path collapses to "/" for the
// default target. Query strings and fragments are carried over untouched.
func Localize(path string, target Locale) string {
	path, suffix := splitSuffix(path)
	segs := segments(path)

	switch {
	case len(segs) == 0:
		if target.IsDefault() {
			return "/" + suffix
		}
		return "/" + string(target) + suffix

	case IsSupported(segs[0]):
		if target.IsDefault() && len(segs) == 1 {
			return "/" + suffix
		}
		segs[0] = string(target)

	default:
		segs = append([]string{string(target)}, segs...)
	}

	return "/" + strings.Join(segs, "/") + suffix
}

// FromPath returns the locale named by the first path segment.
func FromPath(path string) (Locale, bool) {
	path, _ = splitSuffix(path)
	segs := segments(path)
	if len(segs) == 0 || !IsSupported(segs[0]) {
		return "", false
	}
	return Locale(segs[0]), true
}

// HasPrefix reports whether path is "/<l>" or starts with "/<l>/" for some
// supported locale l.
func HasPrefix(path string) bool {
	for _, l := range all {
		p := "/" + string(l)
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// StripPrefix removes a leading locale segment. The result always starts
// with "/".
func StripPrefix(path string) string {
	for _, l := range all {
		p := "/" + string(l)
		if path == p {
			return "/"
		}
		if strings.HasPrefix(path, p+"/") {
			return path[len(p):]
		}
	}
	return path
}

func segments(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitSuffix(path string) (string, string) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		return path[:i], path[i:]
	}
	return path, ""
}

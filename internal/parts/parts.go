// Package parts implements the decomposition steps that both classifiers
// share once the root of a path is known.
package parts

import (
	"strings"

	"lesiw.io/libpath"
)

// nonDots is added to the dot count for any character other than a dot,
// so that a segment with such a character can never count as dots.
const nonDots = 100

// Decompose fills in every field of a Result for path except the
// classification-specific ones, given the root that was recognized.
//
// isSep reports whether a rune is a separator. lastSep returns the byte
// index of the last separator in a string, or -1.
func Decompose(
	path string,
	root libpath.Slice,
	isSep func(rune) bool,
	lastSep func(string) int,
) libpath.Result {
	var r libpath.Result
	r.Input = libpath.NewSlice(0, len(path))
	r.Root = root

	rest := path[root.End():]
	if i := lastSep(rest); i >= 0 {
		r.Directory = libpath.NewSlice(root.End(), i+1)
		r.NumDirectoryParts, r.NumDotsDirectoryParts = CountParts(
			r.Directory.Of(path), isSep,
		)
		r.EntryName = libpath.NewSlice(r.Directory.End(), len(rest)-(i+1))
	} else {
		r.Directory = libpath.NewSlice(root.End(), 0)
		r.EntryName = libpath.NewSlice(root.End(), len(rest))
	}

	r.Stem, r.Extension = SplitEntry(r.EntryName, path)
	r.Location = libpath.NewSlice(0, r.EntryName.Offset)
	return r
}

// CountParts counts the segments of dir and how many of them are
// exactly "." or "..".
//
// A segment is counted when a separator closes it, so a trailing
// segment without a separator is not counted. A run of separators closes
// one segment. A separator at the start of dir closes an empty segment.
func CountParts(dir string, isSep func(rune) bool) (parts, dots int) {
	prevSep := false
	n := 0
	for _, c := range dir {
		if isSep(c) {
			if n == 1 || n == 2 {
				dots++
			}
			if !prevSep {
				parts++
			}
			prevSep = true
			n = 0
			continue
		}
		if c == '.' {
			n++
		} else {
			n += nonDots
		}
		prevSep = false
	}
	return parts, dots
}

// SplitEntry splits entry, a slice of path, into stem and extension at
// its last dot.
//
// When the entry has no dot, or its last dot is its final character,
// the whole entry is the stem and the extension is empty, positioned at
// the end of the entry. This makes ".", "..", "..." and "name." pure
// stems.
func SplitEntry(entry libpath.Slice, path string) (stem, ext libpath.Slice) {
	if entry.IsEmpty() {
		return entry, entry
	}
	i := strings.LastIndexByte(entry.Of(path), '.')
	if i >= 0 && i+1 < entry.Len() {
		stem = libpath.NewSlice(entry.Offset, i)
		ext = libpath.NewSlice(entry.Offset+i, entry.Len()-i)
		return stem, ext
	}
	return entry, libpath.NewSlice(entry.End(), 0)
}

// Package libpath classifies filesystem paths lexically.
//
// A path is classified by one of the platform packages,
// [lesiw.io/libpath/unix] or [lesiw.io/libpath/windows], which report the
// kind of root the path has and decompose it into named regions. Each
// region is a [Slice]: an offset and a length into the original string.
// Nothing is copied, allocated, or normalized.
//
//	path := "/dir/sub-dir/file.ext"
//	_, r := unix.Classify(path, 0)
//	r.Root.Of(path)      // "/"
//	r.Directory.Of(path) // "dir/sub-dir/"
//	r.Stem.Of(path)      // "file"
//	r.Extension.Of(path) // ".ext"
//
// Concatenated in order, Root, Directory and EntryName reconstruct the
// input exactly.
//
// For string-valued convenience functions that detect the path style
// automatically, see [lesiw.io/libpath/path].
package libpath

import "strconv"

// A Slice is the half-open byte range [Offset, Offset+Length) of some
// source string.
//
// A Slice is only meaningful relative to the string it was derived from.
// Two slices are equal when their offsets and lengths are equal; the
// empty Slice is the zero value regardless of source.
type Slice struct {
	Offset int
	Length int
}

// NewSlice returns the Slice with the given offset and length.
func NewSlice(offset, length int) Slice {
	return Slice{Offset: offset, Length: length}
}

// Of returns the substring of str that the slice denotes.
// str must be the string the slice was derived from.
func (s Slice) Of(str string) string {
	return str[s.Offset : s.Offset+s.Length]
}

// Len returns the length of the slice in bytes.
func (s Slice) Len() int { return s.Length }

// End returns the offset one past the last byte of the slice.
func (s Slice) End() int { return s.Offset + s.Length }

// IsEmpty reports whether the slice has zero length.
func (s Slice) IsEmpty() bool { return s.Length == 0 }

func (s Slice) String() string {
	return "(" + strconv.Itoa(s.Offset) + "," + strconv.Itoa(s.Length) + ")"
}

// A Result is the decomposition of a classified path.
//
// Every field is a [Slice] into the classified string, except for the
// two counts. The zero value is the empty result, returned for the empty
// path.
type Result struct {
	// Input is the whole input string.
	Input Slice

	// FullPath is reserved and always empty.
	FullPath Slice

	// Prefix is reserved and always empty.
	Prefix Slice

	// Location is everything before EntryName.
	Location Slice

	// Root is the recognized root token, such as "/", "~", "C:" or
	// "C:\". It is empty for relative paths.
	Root Slice

	// Directory runs from the end of Root up to and including the last
	// separator. It is empty if there is no separator after Root.
	Directory Slice

	// NumDirectoryParts is the number of segments in Directory.
	// Runs of separators count as one boundary.
	NumDirectoryParts int

	// NumDotsDirectoryParts is the number of segments in Directory
	// that are exactly "." or "..".
	NumDotsDirectoryParts int

	// EntryName is everything after Directory.
	EntryName Slice

	// Stem is EntryName up to its last interior dot.
	Stem Slice

	// Extension is EntryName from its last interior dot, dot included.
	Extension Slice

	// FirstInvalid locates the first invalid character found, if any.
	FirstInvalid Slice
}

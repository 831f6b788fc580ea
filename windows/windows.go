// Package windows classifies Windows-style paths.
//
// Both '/' and '\' are separators. Paths may begin with a drive spec
// such as "C:", and a leading '~' can optionally be recognized as the
// home directory.
//
// UNC paths are not classified: a path beginning with two separators is
// SlashRooted, and UncIncomplete and UncRooted are never returned by
// [Classify]. [Tokens] splits a path into the tokens a UNC classifier
// would work from.
package windows

import (
	"strings"
	"unicode/utf8"

	"lesiw.io/libpath"
	"lesiw.io/libpath/internal/parts"
)

// Flags control classification. They may be combined.
type Flags int

const (
	// IgnoreSlashRuns accepts runs of separators. It is the current
	// behavior whether or not it is set.
	IgnoreSlashRuns Flags = 0x1

	// IgnoreInvalidChars skips the invalid character check.
	IgnoreInvalidChars Flags = 0x2

	// RecogniseTildeHome treats a leading "~" followed by a separator,
	// or a path of just "~", as HomeRooted.
	RecogniseTildeHome Flags = 0x4

	// IgnoreInvalidCharsInLongPath has the same value as
	// IgnoreInvalidChars, so setting either sets both.
	IgnoreInvalidCharsInLongPath Flags = 0x2
)

// Classify classifies path and decomposes it into a [libpath.Result].
//
// The empty path yields Empty and the zero Result whatever the flags.
// If an invalid character is found, Classify returns InvalidChars and
// a Result with only Input and FirstInvalid set.
func Classify(path string, flags Flags) (Classification, libpath.Result) {
	if path == "" {
		return Empty, libpath.Result{}
	}

	cl, root, bad := classifyRoot(path, flags)
	if cl == InvalidChars {
		return cl, libpath.Result{
			Input:        libpath.NewSlice(0, len(path)),
			FirstInvalid: bad,
		}
	}
	return cl, parts.Decompose(path, root, isSeparator, lastSeparator)
}

// classifyRoot scans at most the first three characters of a non-empty
// path to find its root.
func classifyRoot(
	path string, flags Flags,
) (cl Classification, root, bad libpath.Slice) {
	var tilde, drive bool
	n := 0
	for i, c := range path {
		if flags&IgnoreInvalidChars == 0 && isInvalid(c) {
			return InvalidChars, root, libpath.NewSlice(i, utf8.RuneLen(c))
		}
		switch n {
		case 0:
			switch {
			case isSeparator(c):
				return SlashRooted, libpath.NewSlice(0, 1), bad
			case c == '~' && flags&RecogniseTildeHome != 0:
				tilde = true
			case isDriveLetter(c):
				drive = true
			default:
				return Relative, root, bad
			}
		case 1:
			switch {
			case tilde && isSeparator(c):
				return HomeRooted, libpath.NewSlice(0, 1), bad
			case drive && c == ':':
			default:
				return Relative, root, bad
			}
		case 2:
			if isSeparator(c) {
				return DriveLetterRooted, libpath.NewSlice(0, 3), bad
			}
			return DriveLetterRelative, libpath.NewSlice(0, 2), bad
		}
		n++
	}
	switch {
	case tilde && n == 1:
		return HomeRooted, libpath.NewSlice(0, 1), bad
	case drive && n == 2:
		return DriveLetterRelative, libpath.NewSlice(0, 2), bad
	}
	return Relative, root, bad
}

func isSeparator(c rune) bool {
	return c == '/' || c == '\\'
}

// lastSeparator returns the index of the rightmost '/' or '\' in s,
// or -1 if there is neither.
func lastSeparator(s string) int {
	i := strings.LastIndexByte(s, '/')
	if j := strings.LastIndexByte(s[i+1:], '\\'); j >= 0 {
		return i + 1 + j
	}
	return i
}

func isDriveLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isInvalid(c rune) bool {
	switch c {
	case '"', '*', '<', '>', '?', '|':
		return true
	}
	return c >= 0x01 && c <= 0x1F
}

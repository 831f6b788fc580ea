// Package unix classifies POSIX-style paths.
//
// The only separator is '/'. A leading '~' can optionally be recognized
// as the home directory.
package unix

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

	// AssumeDirectory is accepted but has no effect yet.
	AssumeDirectory Flags = 0x8
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

// classifyRoot scans the first characters of a non-empty path to find
// its root. It stops at the first character that decides the outcome.
func classifyRoot(
	path string, flags Flags,
) (cl Classification, root, bad libpath.Slice) {
	tilde := false
	n := 0
	for i, c := range path {
		if flags&IgnoreInvalidChars == 0 && isInvalid(c) {
			return InvalidChars, root, libpath.NewSlice(i, utf8.RuneLen(c))
		}
		if n == 0 && c == '~' && flags&RecogniseTildeHome != 0 {
			tilde = true
			n++
			continue
		}
		if isSeparator(c) {
			if n == 0 {
				return SlashRooted, libpath.NewSlice(0, 1), bad
			}
			if tilde {
				return HomeRooted, libpath.NewSlice(0, 1), bad
			}
		}
		break
	}
	if tilde && path == "~" {
		return HomeRooted, libpath.NewSlice(0, 1), bad
	}
	return Relative, root, bad
}

func isSeparator(c rune) bool {
	return c == '/'
}

func lastSeparator(s string) int {
	return strings.LastIndexByte(s, '/')
}

func isInvalid(c rune) bool {
	switch c {
	case '*', '<', '>', '?', '|':
		return true
	}
	return c >= 0x80 && c <= 0xFF
}

// Package path reports the parts of filesystem paths in a lexical manner,
// supporting Unix and Windows path styles.
//
// The path style is detected from the input and the path is classified
// by [lesiw.io/libpath/unix] or [lesiw.io/libpath/windows]:
//
//   - Windows-style: a leading drive spec (C:, d:) or any backslash
//   - Unix-style: everything else
//
// A leading ~ followed by a separator is recognized as the home directory
// in both styles.
//
// All operations are purely lexical. They do not access the filesystem,
// expand ~, or clean the path in any way.
//
// Trailing separators indicate directories:
//
//	path.IsDir("foo/bar/")   // true
//	path.IsDir("foo/bar")    // false
package path

import (
	"strings"

	"lesiw.io/libpath"
	"lesiw.io/libpath/unix"
	"lesiw.io/libpath/windows"
)

// Style is a path syntax.
type Style int

const (
	Unix Style = iota
	Windows
)

func (s Style) String() string {
	if s == Windows {
		return "windows"
	}
	return "unix"
}

// Parts holds the parts of a path as substrings of it.
type Parts struct {
	Style Style

	// Class is the name of the path's classification, such as
	// "Relative" or "DriveLetterRooted".
	Class string

	// Abs reports whether the path is lexically absolute.
	Abs bool

	Root string
	Dir  string
	Name string
	Stem string
	Ext  string

	NumDirs     int
	NumDotsDirs int
}

// Parse returns the parts of p.
// If p contains a character that is invalid for its style in its root,
// Parse returns an [*libpath.InvalidCharError].
//
// Examples:
//
//	Parse("/usr/lib/libc.so")  // Root "/", Dir "usr/lib/", Name "libc.so"
//	Parse(`C:\Users\foo.txt`)  // Root `C:\`, Dir `Users\`, Stem "foo"
//	Parse("~/notes.md")        // Root "~", Dir "/", Name "notes.md"
func Parse(p string) (Parts, error) {
	c := classify(p, false)
	if err := c.result.Err(p); err != nil {
		return Parts{Style: c.style, Class: c.class}, err
	}
	r := c.result
	return Parts{
		Style:       c.style,
		Class:       c.class,
		Abs:         c.abs,
		Root:        r.Root.Of(p),
		Dir:         r.Directory.Of(p),
		Name:        r.EntryName.Of(p),
		Stem:        r.Stem.Of(p),
		Ext:         r.Extension.Of(p),
		NumDirs:     r.NumDirectoryParts,
		NumDotsDirs: r.NumDotsDirectoryParts,
	}, nil
}

// Split splits p immediately following its final separator, separating
// it into a location and an entry name. The location keeps its root and
// trailing separator, so that dir+file == p.
// Returns ("", p) if p has no root and no separator.
// Returns (p, "") if p ends with a separator or is only a root.
func Split(p string) (dir, file string) {
	r := classify(p, true).result
	return r.Location.Of(p), r.EntryName.Of(p)
}

// Base returns the entry name of p: everything after its final separator
// and root. Returns "" if p is a directory or a root.
func Base(p string) string {
	_, file := Split(p)
	return file
}

// Dir returns everything before the entry name of p, including the root
// and the trailing separator.
func Dir(p string) string {
	dir, _ := Split(p)
	return dir
}

// Ext returns the extension of p's entry name, including the dot.
// Entry names whose only dot is the first character have no stem:
// Ext(".bashrc") is ".bashrc". Entry names that end in a dot, such as
// "." and "..", have no extension.
func Ext(p string) string {
	r := classify(p, true).result
	return r.Extension.Of(p)
}

// Stem returns the entry name of p without its extension.
func Stem(p string) string {
	r := classify(p, true).result
	return r.Stem.Of(p)
}

// IsDir reports whether p is lexically a directory: it is non-empty and
// has no entry name.
func IsDir(p string) bool {
	if p == "" {
		return false
	}
	return classify(p, true).result.EntryName.IsEmpty()
}

// IsRoot reports whether p consists only of a root, such as "/", "~",
// `C:\` or "C:".
func IsRoot(p string) bool {
	r := classify(p, true).result
	return !r.Root.IsEmpty() && r.Root.Len() == len(p)
}

// IsAbs reports whether p is lexically absolute:
//   - Paths starting with / (Unix-style)
//   - Paths starting with / or \ (Windows-style)
//   - Paths starting with a drive spec and a separator (Windows-style)
//
// Home-relative paths such as "~/foo" are not absolute.
func IsAbs(p string) bool {
	return classify(p, true).abs
}

// DetectStyle returns the style of p.
func DetectStyle(p string) Style {
	if len(p) >= 2 && p[1] == ':' &&
		((p[0] >= 'A' && p[0] <= 'Z') || (p[0] >= 'a' && p[0] <= 'z')) {
		return Windows
	}
	if strings.IndexByte(p, '\\') >= 0 {
		return Windows
	}
	return Unix
}

type classification struct {
	style  Style
	class  string
	abs    bool
	result libpath.Result
}

func classify(p string, ignoreInvalid bool) classification {
	c := classification{style: DetectStyle(p)}
	switch c.style {
	case Windows:
		flags := windows.RecogniseTildeHome
		if ignoreInvalid {
			flags |= windows.IgnoreInvalidChars
		}
		cl, r := windows.Classify(p, flags)
		c.class, c.result = cl.String(), r
		c.abs = cl == windows.SlashRooted || cl == windows.DriveLetterRooted
	default:
		flags := unix.RecogniseTildeHome
		if ignoreInvalid {
			flags |= unix.IgnoreInvalidChars
		}
		cl, r := unix.Classify(p, flags)
		c.class, c.result = cl.String(), r
		c.abs = cl == unix.SlashRooted
	}
	return c
}

package parts

import (
	"strings"
	"testing"

	"lesiw.io/libpath"
)

func isSlash(c rune) bool { return c == '/' }

func lastSlash(s string) int { return strings.LastIndexByte(s, '/') }

func TestCountParts(t *testing.T) {
	tests := []struct {
		dir   string
		parts int
		dots  int
	}{
		{"", 0, 0},
		{"dir", 0, 0},
		{"dir/", 1, 0},
		{"/", 1, 0},
		{"//", 1, 0},
		{"a//b/", 2, 0},
		{"./", 1, 1},
		{"../", 1, 1},
		{".../", 1, 0},
		{".a/", 1, 0},
		{"a./", 1, 0},
		{".././", 2, 2},
		{"..//./", 2, 2},
		{"dir1/../", 2, 1},
		{"/dir/sub-dir/", 3, 0},
		{"😀/../📁/", 3, 1},
		{"a/..", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			parts, dots := CountParts(tt.dir, isSlash)
			if parts != tt.parts || dots != tt.dots {
				t.Errorf("CountParts(%q) = (%d, %d), want (%d, %d)",
					tt.dir, parts, dots, tt.parts, tt.dots)
			}
		})
	}
}

func TestSplitEntry(t *testing.T) {
	tests := []struct {
		path string
		stem string
		ext  string
	}{
		{"", "", ""},
		{"name.ext", "name", ".ext"},
		{"name", "name", ""},
		{".ext", "", ".ext"},
		{"a.b.c", "a.b", ".c"},
		{"ab.", "ab.", ""},
		{"a..", "a..", ""},
		{".", ".", ""},
		{"..", "..", ""},
		{"...", "...", ""},
		{"..a", ".", ".a"},
		{"é.ñ", "é", ".ñ"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			entry := libpath.NewSlice(0, len(tt.path))
			stem, ext := SplitEntry(entry, tt.path)
			if stem.Of(tt.path) != tt.stem || ext.Of(tt.path) != tt.ext {
				t.Errorf("SplitEntry(%q) = (%q, %q), want (%q, %q)",
					tt.path, stem.Of(tt.path), ext.Of(tt.path),
					tt.stem, tt.ext)
			}
			if stem.Offset != entry.Offset || ext.End() != entry.End() {
				t.Errorf("SplitEntry(%q) = (%v, %v), not within %v",
					tt.path, stem, ext, entry)
			}
		})
	}
}

func TestSplitEntryOffset(t *testing.T) {
	path := "dir/file.txt"
	stem, ext := SplitEntry(libpath.NewSlice(4, 8), path)
	if stem != libpath.NewSlice(4, 4) || ext != libpath.NewSlice(8, 4) {
		t.Errorf("SplitEntry(%q[4:]) = (%v, %v), want ((4,4), (8,4))",
			path, stem, ext)
	}
	stem, ext = SplitEntry(libpath.NewSlice(4, 0), "dir/")
	if stem != libpath.NewSlice(4, 0) || ext != libpath.NewSlice(4, 0) {
		t.Errorf("SplitEntry(empty) = (%v, %v), want ((4,0), (4,0))",
			stem, ext)
	}
}

func TestDecompose(t *testing.T) {
	path := "/a/../b.c"
	r := Decompose(path, libpath.NewSlice(0, 1), isSlash, lastSlash)
	want := libpath.Result{
		Input:                 libpath.NewSlice(0, 9),
		Location:              libpath.NewSlice(0, 6),
		Root:                  libpath.NewSlice(0, 1),
		Directory:             libpath.NewSlice(1, 5),
		NumDirectoryParts:     2,
		NumDotsDirectoryParts: 1,
		EntryName:             libpath.NewSlice(6, 3),
		Stem:                  libpath.NewSlice(6, 1),
		Extension:             libpath.NewSlice(7, 2),
	}
	if r != want {
		t.Errorf("Decompose(%q) = %+v, want %+v", path, r, want)
	}
}

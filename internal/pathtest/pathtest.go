// Package pathtest provides helpers for testing path classifiers.
package pathtest

import (
	"testing"

	"lesiw.io/libpath"
)

// Corpus returns every string of up to maxLen runes drawn from alphabet,
// including the empty string, shortest first.
func Corpus(alphabet string, maxLen int) []string {
	runes := []rune(alphabet)
	out := []string{""}
	level := []string{""}
	for range maxLen {
		var next []string
		for _, s := range level {
			for _, r := range runes {
				next = append(next, s+string(r))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// CheckInvariants reports an error on t for each way in which r, the
// result of classifying path without error, is not a well-formed
// decomposition of path.
func CheckInvariants(t testing.TB, path string, r libpath.Result) {
	t.Helper()
	if path == "" {
		if r != (libpath.Result{}) {
			t.Errorf("%q: empty path gave non-empty result %+v", path, r)
		}
		return
	}
	check := func(ok bool, format string, args ...any) {
		t.Helper()
		if !ok {
			t.Errorf("%q: "+format, append([]any{path}, args...)...)
		}
	}
	check(r.Input == libpath.NewSlice(0, len(path)),
		"Input = %v", r.Input)
	check(r.Root.Offset == 0, "Root = %v", r.Root)
	check(r.Directory.Offset == r.Root.End(),
		"Directory %v does not follow Root %v", r.Directory, r.Root)
	check(r.EntryName.Offset == r.Directory.End(),
		"EntryName %v does not follow Directory %v",
		r.EntryName, r.Directory)
	check(r.Root.Len()+r.Directory.Len()+r.EntryName.Len() == len(path),
		"Root %v, Directory %v, EntryName %v do not cover %d bytes",
		r.Root, r.Directory, r.EntryName, len(path))
	check(r.Stem.Offset == r.EntryName.Offset,
		"Stem %v does not start EntryName %v", r.Stem, r.EntryName)
	check(r.Stem.Len()+r.Extension.Len() == r.EntryName.Len(),
		"Stem %v and Extension %v do not cover EntryName %v",
		r.Stem, r.Extension, r.EntryName)
	check(r.Extension.End() == r.EntryName.End(),
		"Extension %v does not end EntryName %v",
		r.Extension, r.EntryName)
	check(r.Location == libpath.NewSlice(0, r.EntryName.Offset),
		"Location = %v", r.Location)
	check(r.NumDotsDirectoryParts <= r.NumDirectoryParts,
		"%d dots parts > %d parts",
		r.NumDotsDirectoryParts, r.NumDirectoryParts)
	check(r.NumDirectoryParts == 0 || !r.Directory.IsEmpty(),
		"%d parts in empty Directory", r.NumDirectoryParts)
	check(r.Prefix.IsEmpty() && r.FullPath.IsEmpty(),
		"Prefix %v, FullPath %v not empty", r.Prefix, r.FullPath)
	check(r.FirstInvalid.IsEmpty(), "FirstInvalid = %v", r.FirstInvalid)
}

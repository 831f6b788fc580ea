package windows

import (
	"iter"

	"lesiw.io/libpath"
)

// Tokens returns an iterator over the tokens of path.
//
// Each token is either a maximal run of separators or a maximal run of
// other characters. If path begins with a drive spec followed by more
// non-separator characters, that first run is yielded as two tokens, the
// drive spec and the remainder. Later runs are never split:
//
//	`\\server\share` -> `\\`, `server`, `\`, `share`
//	`C:dir\file`     -> `C:`, `dir`, `\`, `file`
//	`a\C:b`          -> `a`, `\`, `C:b`
//
// The tokens are contiguous and cover all of path.
func Tokens(path string) iter.Seq[libpath.Slice] {
	return func(yield func(libpath.Slice) bool) {
		start := 0
		for start < len(path) {
			sep := isSeparator(rune(path[start]))
			end := start + 1
			for end < len(path) && isSeparator(rune(path[end])) == sep {
				end++
			}
			tok := libpath.NewSlice(start, end-start)
			if start == 0 && !sep && tok.Len() > 2 &&
				hasDriveSpec(tok.Of(path)) {
				if !yield(libpath.NewSlice(start, 2)) {
					return
				}
				tok = libpath.NewSlice(start+2, tok.Len()-2)
			}
			if !yield(tok) {
				return
			}
			start = end
		}
	}
}

// SplitTokens returns the tokens of path as substrings.
// See [Tokens].
func SplitTokens(path string) []string {
	var toks []string
	for tok := range Tokens(path) {
		toks = append(toks, tok.Of(path))
	}
	return toks
}

func hasDriveSpec(s string) bool {
	return len(s) >= 2 && isDriveLetter(rune(s[0])) && s[1] == ':'
}

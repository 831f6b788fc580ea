package libpath

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidChar indicates that a path contains a character that is not
// permitted on the target platform.
var ErrInvalidChar = errors.New("invalid character in path")

// An InvalidCharError records the first invalid character of a path.
type InvalidCharError struct {
	Path   string
	Offset int
	Char   rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("%q: invalid character %q at offset %d",
		e.Path, e.Char, e.Offset)
}

func (e *InvalidCharError) Unwrap() error { return ErrInvalidChar }

// Err returns an [*InvalidCharError] if r records an invalid character,
// or nil otherwise.
//
// path must be the string r was classified from.
func (r Result) Err(path string) error {
	if r.FirstInvalid.IsEmpty() {
		return nil
	}
	c, _ := utf8.DecodeRuneInString(r.FirstInvalid.Of(path))
	return &InvalidCharError{
		Path:   path,
		Offset: r.FirstInvalid.Offset,
		Char:   c,
	}
}

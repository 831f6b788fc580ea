package unix

import "strconv"

// A Classification describes the root of a POSIX path.
//
// Negative values are error-like; see [Classification.IsValid].
type Classification int

const (
	InvalidSlashRuns Classification = -3 // reserved
	InvalidChars     Classification = -2
	Invalid          Classification = -1 // reserved
	Unknown          Classification = 0
	Empty            Classification = 1
	Relative         Classification = 2
	SlashRooted      Classification = 3
	Reserved1        Classification = 4
	Reserved2        Classification = 5
	Reserved3        Classification = 6
	Reserved4        Classification = 7
	HomeRooted       Classification = 8
)

// IsValid reports whether c is not an error classification.
func (c Classification) IsValid() bool { return c >= 0 }

func (c Classification) String() string {
	switch c {
	case InvalidSlashRuns:
		return "InvalidSlashRuns"
	case InvalidChars:
		return "InvalidChars"
	case Invalid:
		return "Invalid"
	case Unknown:
		return "Unknown"
	case Empty:
		return "Empty"
	case Relative:
		return "Relative"
	case SlashRooted:
		return "SlashRooted"
	case Reserved1, Reserved2, Reserved3, Reserved4:
		return "Reserved" + strconv.Itoa(int(c-Reserved1)+1)
	case HomeRooted:
		return "HomeRooted"
	}
	return "Classification(" + strconv.Itoa(int(c)) + ")"
}

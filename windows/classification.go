package windows

import "strconv"

// A Classification describes the root of a Windows path.
//
// Negative values are error-like; see [Classification.IsValid].
type Classification int

const (
	InvalidSlashRuns    Classification = -3 // reserved
	InvalidChars        Classification = -2
	Invalid             Classification = -1 // reserved
	Unknown             Classification = 0
	Empty               Classification = 1
	Relative            Classification = 2
	SlashRooted         Classification = 3
	DriveLetterRelative Classification = 4
	DriveLetterRooted   Classification = 5
	UncIncomplete       Classification = 6 // reserved
	UncRooted           Classification = 7 // reserved
	HomeRooted          Classification = 8
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
	case DriveLetterRelative:
		return "DriveLetterRelative"
	case DriveLetterRooted:
		return "DriveLetterRooted"
	case UncIncomplete:
		return "UncIncomplete"
	case UncRooted:
		return "UncRooted"
	case HomeRooted:
		return "HomeRooted"
	}
	return "Classification(" + strconv.Itoa(int(c)) + ")"
}

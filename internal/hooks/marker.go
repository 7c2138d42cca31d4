package hooks

import "strings"

// Marker identifies scripts written by git-vcs.
const Marker = "#git-vcs"

// LegacyMarkers identify scripts written by predecessor tools that manage
// the same hook names. Install replaces them; uninstall leaves them alone.
var LegacyMarkers = []string{
	"Generated by ghooks",
}

// Ownership describes who wrote an existing hook file.
type Ownership int

const (
	Missing Ownership = iota // no file
	Owned                    // written by git-vcs
	Legacy                   // written by a predecessor tool
	Foreign                  // written by the user or another tool
)

func (o Ownership) String() string {
	switch o {
	case Missing:
		return "missing"
	case Owned:
		return "installed"
	case Legacy:
		return "legacy"
	case Foreign:
		return "foreign"
	default:
		return "unknown"
	}
}

// MarshalText encodes the ownership as its String form.
func (o Ownership) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Classify reports who owns a hook file with the given content. The current
// marker takes precedence over legacy markers.
func Classify(content string) Ownership {
	if strings.Contains(content, Marker) {
		return Owned
	}
	for _, m := range LegacyMarkers {
		if strings.Contains(content, m) {
			return Legacy
		}
	}
	return Foreign
}

// Replaceable reports whether install may overwrite a file of this ownership.
func (o Ownership) Replaceable() bool {
	return o == Owned || o == Legacy
}

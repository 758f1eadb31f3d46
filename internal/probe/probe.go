package probe

import "context"

// OSFamily selects which ping output dialect applies.
type OSFamily int

const (
	FamilyUnix OSFamily = iota
	FamilyWindows
)

// FamilyFromGOOS maps a GOOS value to the output dialect its ping
// binary produces.
func FamilyFromGOOS(goos string) OSFamily {
	if goos == "windows" {
		return FamilyWindows
	}
	return FamilyUnix
}

// Result is the unified outcome of a single probe.
//
// Fields:
// - RTTMillis: round-trip time in milliseconds. SubMilli marks the
//   Windows "time<1ms" case, where RTTMillis stays 0.
// - Reason: short failure cause ("timeout", "no match", "exec: ...").
//   Empty when reachable.
// - Raw: the original ping output, kept for debug logging only.
type Result struct {
	Reachable  bool
	SourceAddr string
	RTTMillis  float64
	SubMilli   bool
	TTL        int
	Reason     string
	Raw        string
}

// Checker performs a single reachability probe against a target.
type Checker interface {
	Check(ctx context.Context, target string) Result
}

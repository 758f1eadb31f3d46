package probe

import (
	"regexp"
	"strconv"
	"strings"
)

// Reply patterns for the two ping dialects:
// Windows: "Reply from 192.168.1.1: bytes=32 time=15ms TTL=64" (or "time<1ms")
// Unix:    "64 bytes from 8.8.8.8: icmp_seq=1 ttl=118 time=12.7 ms"
var (
	windowsReply = regexp.MustCompile(`Reply from ([\d\.]+): bytes=\d+ time([=<])(\d+)ms TTL=(\d+)`)
	unixReply    = regexp.MustCompile(`\d+ bytes from ([\d\.]+): icmp_seq=\d+ ttl=(\d+) time=(\d+(?:\.\d+)?) ms`)
)

// Parse classifies the raw output of one ping invocation. It is a pure
// function of its two inputs; anything matching neither pattern counts
// as unreachable.
func Parse(raw string, family OSFamily) Result {
	res := Result{Raw: raw}

	switch family {
	case FamilyWindows:
		// A timed-out marker wins even when a reply line also matched.
		if strings.Contains(raw, "Request timed out") {
			res.Reason = "timeout"
			return res
		}
		m := windowsReply.FindStringSubmatch(raw)
		if m == nil {
			res.Reason = "no match"
			return res
		}
		res.Reachable = true
		res.SourceAddr = m[1]
		if m[2] == "<" {
			res.SubMilli = true
		} else {
			res.RTTMillis, _ = strconv.ParseFloat(m[3], 64)
		}
		res.TTL, _ = strconv.Atoi(m[4])
		return res

	default:
		m := unixReply.FindStringSubmatch(raw)
		if m == nil {
			res.Reason = "no match"
			return res
		}
		res.Reachable = true
		res.SourceAddr = m[1]
		res.TTL, _ = strconv.Atoi(m[2])
		res.RTTMillis, _ = strconv.ParseFloat(m[3], 64)
		return res
	}
}

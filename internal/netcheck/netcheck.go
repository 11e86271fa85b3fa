// Package netcheck provides a cheap reachability probe used as a fail-fast
// gate before any download or upload work starts.
package netcheck

import (
	"net"
	"time"
)

// DefaultAddress is a well-known, highly available resolver endpoint.
const DefaultAddress = "8.8.8.8:53"

// DefaultTimeout keeps the probe fast; a slow dial counts as unreachable.
const DefaultTimeout = 3 * time.Second

// Check attempts a TCP connection to addr. It returns false on any failure
// (timeout, refusal, DNS error) and never returns an error: the probe is a
// hint, not a guarantee that later requests succeed.
func Check(addr string, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

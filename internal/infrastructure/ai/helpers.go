package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"
	"unicode/utf8"
)

// truncate shortens s to at most limit runes.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

func valueOrDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// describeTransportError turns a failed round trip into a single-line message.
func describeTransportError(err error, endpoint string, timeout time.Duration) string {
	switch {
	case isTimeout(err):
		return fmt.Sprintf("request timed out after %s", timeout)
	case isConnectionError(err):
		return fmt.Sprintf("cannot connect to %s", endpoint)
	default:
		return err.Error()
	}
}

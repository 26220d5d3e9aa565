//go:build !linux

package pps

import (
	"fmt"
	"io"
)

func openWatcher(pin int, onPulse func()) (io.Closer, error) {
	return nil, fmt.Errorf("pps gpio input not supported on this platform")
}

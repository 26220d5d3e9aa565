//go:build linux

package pps

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/warthog618/go-gpiocdev"
)

// openWatcher requests the given BCM GPIO as an input with rising-edge
// detection and calls onPulse for every edge. Receivers emit one rising
// edge per second on their PPS pin.
func openWatcher(pin int, onPulse func()) (io.Closer, error) {
	if pin <= 0 {
		return nil, fmt.Errorf("pps: invalid gpio pin %d", pin)
	}

	// On Pi, line names are commonly "GPIO18", etc.
	lineName := fmt.Sprintf("GPIO%d", pin)

	// Try likely chips first; Pi 5 kernel variants can expose header GPIOs
	// on different gpiochip numbers.
	chipCandidates := []string{"/dev/gpiochip0", "/dev/gpiochip4"}
	entries, _ := os.ReadDir("/dev")
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "gpiochip") {
			chipCandidates = append(chipCandidates, filepath.Join("/dev", name))
		}
	}

	for _, chipPath := range chipCandidates {
		chip, err := gpiocdev.NewChip(chipPath)
		if err != nil {
			continue
		}
		offset, err := chip.FindLine(lineName)
		if err != nil {
			_ = chip.Close()
			continue
		}
		line, err := chip.RequestLine(offset,
			gpiocdev.AsInput,
			gpiocdev.WithRisingEdge,
			gpiocdev.WithConsumer("nmea-hub-pps"),
			gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
				if evt.Type == gpiocdev.LineEventRisingEdge {
					onPulse()
				}
			}))
		if err != nil {
			_ = chip.Close()
			continue
		}
		return &gpiodWatcher{chip: chip, line: line}, nil
	}

	return nil, fmt.Errorf("pps: gpio line %q not found (or busy)", lineName)
}

type gpiodWatcher struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

func (w *gpiodWatcher) Close() error {
	if w == nil || w.line == nil {
		return nil
	}
	err := w.line.Close()
	w.line = nil
	if w.chip != nil {
		_ = w.chip.Close()
		w.chip = nil
	}
	return err
}

// Package pps watches a GPIO line for the pulse-per-second output of a
// GNSS receiver and publishes pulse statistics as a snapshot.
package pps

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

type Config struct {
	Enable bool

	// Pin is the BCM GPIO number carrying the PPS signal.
	Pin int
}

type Snapshot struct {
	Enabled bool `json:"enabled"`
	Running bool `json:"running"`
	Pin     int  `json:"pin,omitempty"`

	Pulses       uint64  `json:"pulses"`
	LastPulseUTC string  `json:"last_pulse_utc,omitempty"`
	PeriodSec    float64 `json:"period_sec,omitempty"`

	LastError string `json:"last_error,omitempty"`
}

type Service struct {
	cfg Config

	last atomic.Value // Snapshot

	mu        sync.Mutex
	watcher   io.Closer
	pulses    uint64
	prevPulse time.Time
}

func New(cfg Config) *Service {
	s := &Service{cfg: cfg}
	s.last.Store(Snapshot{Enabled: cfg.Enable, Pin: cfg.Pin})
	return s
}

func (s *Service) Start(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("pps service is nil")
	}
	if !s.cfg.Enable {
		return nil
	}
	if s.cfg.Pin <= 0 {
		return fmt.Errorf("pps: invalid gpio pin %d", s.cfg.Pin)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return nil
	}

	w, err := openWatcher(s.cfg.Pin, func() {
		s.handlePulse(time.Now().UTC())
	})
	if err != nil {
		cur := s.Snapshot()
		cur.LastError = err.Error()
		s.last.Store(cur)
		return err
	}
	s.watcher = w
	s.last.Store(Snapshot{Enabled: true, Running: true, Pin: s.cfg.Pin})
	return nil
}

// handlePulse runs on the event handler goroutine of the GPIO request.
func (s *Service) handlePulse(now time.Time) {
	s.mu.Lock()
	s.pulses++
	snap := Snapshot{
		Enabled:      true,
		Running:      true,
		Pin:          s.cfg.Pin,
		Pulses:       s.pulses,
		LastPulseUTC: now.Format(time.RFC3339Nano),
	}
	if !s.prevPulse.IsZero() {
		snap.PeriodSec = now.Sub(s.prevPulse).Seconds()
	}
	s.prevPulse = now
	s.mu.Unlock()

	s.last.Store(snap)
}

func (s *Service) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
}

func (s *Service) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	v := s.last.Load()
	if v == nil {
		return Snapshot{}
	}
	return v.(Snapshot)
}

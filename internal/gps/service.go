package gps

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"nmea-hub/internal/nmea"
	"nmea-hub/internal/stream"
)

// Config controls the NMEA reader.
//
// Typical USB receivers (u-blox and friends) appear as /dev/ttyACM* and
// emit NMEA at 9600 baud by default. Networked feeds (source "tcp") are
// expected to carry the same raw sentence stream over a socket, e.g. a
// multiplexer or kplex export.
//
// Failures are reported through the snapshot; the service never brings
// down the main process.
type Config struct {
	Enable bool

	// Source selects the ingest path: "serial" or "tcp". When empty,
	// defaults to "serial".
	Source string

	// Device is the serial device path for Source=="serial". Empty means
	// auto-detect.
	Device string
	Baud   int

	// Addr is host:port for Source=="tcp".
	Addr string

	// Required is the sentence set that must complete within one receiver
	// tick before a fix is considered delivered.
	Required []nmea.SentenceType
}

type Snapshot struct {
	Enabled bool `json:"enabled"`
	Valid   bool `json:"valid"`

	Source string `json:"source,omitempty"`
	Device string `json:"device,omitempty"`
	Baud   int    `json:"baud,omitempty"`
	Addr   string `json:"addr,omitempty"`

	FixType       string   `json:"fix_type,omitempty"`
	LatDeg        *float64 `json:"lat_deg,omitempty"`
	LonDeg        *float64 `json:"lon_deg,omitempty"`
	AltM          *float64 `json:"alt_m,omitempty"`
	GeoidSepM     *float64 `json:"geoid_sep_m,omitempty"`
	EllipsoidAltM *float64 `json:"ellipsoid_alt_m,omitempty"`
	SpeedKt       *float64 `json:"speed_kt,omitempty"`
	TrackDeg      *float64 `json:"track_deg,omitempty"`
	Satellites    *int     `json:"satellites,omitempty"`
	HDOP          *float64 `json:"hdop,omitempty"`
	VDOP          *float64 `json:"vdop,omitempty"`
	PDOP          *float64 `json:"pdop,omitempty"`
	FixPRNs       []int    `json:"fix_prns,omitempty"`
	SatsInView    int      `json:"sats_in_view,omitempty"`

	FixTimeUTC string  `json:"fix_time_utc,omitempty"`
	FixDate    string  `json:"fix_date,omitempty"`
	FixAgeSec  float64 `json:"fix_age_sec,omitempty"`

	Sentences uint64 `json:"sentences"`
	Rejected  uint64 `json:"rejected"`
	Fixes     uint64 `json:"fixes"`

	LastText  string `json:"last_text,omitempty"`
	LastError string `json:"last_error,omitempty"`
}

type Service struct {
	cfg Config

	cancel context.CancelFunc
	wg     sync.WaitGroup

	last atomic.Value // Snapshot

	mu     sync.Mutex
	closer io.Closer
}

func New(cfg Config) *Service {
	s := &Service{cfg: cfg}
	src := strings.ToLower(strings.TrimSpace(cfg.Source))
	if src == "" {
		src = "serial"
	}
	s.cfg.Source = src
	s.last.Store(Snapshot{Enabled: cfg.Enable, Source: src, Device: cfg.Device, Baud: cfg.Baud, Addr: strings.TrimSpace(cfg.Addr)})
	return s
}

func (s *Service) Start(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("gps service is nil")
	}
	if !s.cfg.Enable {
		return nil
	}
	if ctx == nil {
		return fmt.Errorf("ctx is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	if s.cfg.Source == "tcp" {
		return s.startTCPLocked(ctx)
	}
	return s.startSerialLocked(ctx)
}

func (s *Service) startSerialLocked(ctx context.Context) error {
	device := strings.TrimSpace(s.cfg.Device)
	if device == "" {
		device = autoDetectDevice()
		if device == "" {
			s.setErrorLocked("gps auto-detect failed: no /dev/ttyACM* or /dev/ttyUSB* found")
			return fmt.Errorf("gps auto-detect failed")
		}
	}

	baud := s.cfg.Baud
	if baud == 0 {
		baud = 9600
	}

	f, err := openSerial(device, baud)
	if err != nil {
		s.setErrorLocked(fmt.Sprintf("gps open failed device=%s baud=%d: %v", device, baud, err))
		return err
	}
	// Keep the file reference for Close().
	s.closer = f

	cfg := s.cfg
	cfg.Device = device
	cfg.Baud = baud
	st, err := newSession(cfg)
	if err != nil {
		_ = f.Close()
		s.closer = nil
		return err
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			_ = f.Close()
		}()

		log.Printf("gps enabled device=%s baud=%d", device, baud)
		s.readLoop(childCtx, f, st)
	}()

	// Publish initial snapshot.
	s.last.Store(Snapshot{Enabled: true, Valid: false, Source: "serial", Device: device, Baud: baud})
	return nil
}

func (s *Service) startTCPLocked(ctx context.Context) error {
	addr := strings.TrimSpace(s.cfg.Addr)
	if addr == "" {
		return fmt.Errorf("gps tcp source requires addr")
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		log.Printf("gps enabled source=tcp addr=%s", addr)
		backoff := 250 * time.Millisecond
		maxBackoff := 10 * time.Second

		for {
			select {
			case <-childCtx.Done():
				return
			default:
			}

			conn, err := dialFeed(childCtx, addr)
			if err != nil {
				s.setError(fmt.Sprintf("gps dial failed addr=%s: %v", addr, err))
				t := backoff
				if t > maxBackoff {
					t = maxBackoff
				}
				select {
				case <-childCtx.Done():
					return
				case <-time.After(t):
				}
				if backoff < maxBackoff {
					backoff *= 2
				}
				continue
			}

			// Reset backoff after a successful connection.
			backoff = 250 * time.Millisecond

			s.mu.Lock()
			// Swap the closer so Close() can interrupt an active connection.
			s.closer = conn
			s.mu.Unlock()

			// Each connection gets a fresh aggregator; tick state from a
			// previous feed must not leak into the new one.
			st, serr := newSession(s.cfg)
			if serr != nil {
				_ = conn.Close()
				s.setError(serr.Error())
				return
			}

			func() {
				defer func() { _ = conn.Close() }()
				s.readLoop(childCtx, conn, st)
			}()
			// Loop and reconnect.
		}
	}()

	// Publish initial snapshot.
	s.last.Store(Snapshot{Enabled: true, Valid: false, Source: "tcp", Addr: addr})
	return nil
}

// readLoop feeds sentences from r into the session until the stream ends
// or the context is cancelled.
func (s *Service) readLoop(ctx context.Context, r io.Reader, st *session) {
	scanner := stream.NewScanner(r)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			err := scanner.Err()
			if err == nil {
				err = io.EOF
			}
			s.setError(fmt.Sprintf("gps read stopped: %v", err))
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		// Some receivers interleave binary or chatter; filter quickly.
		if !strings.HasPrefix(line, "$") {
			continue
		}

		now := time.Now().UTC()
		if err := st.apply(now, line); err != nil {
			// Avoid spamming on bad noise; just keep the last error.
			s.setError(err.Error())
			continue
		}
		s.last.Store(st.snapshot(now))
	}
}

func dialFeed(ctx context.Context, addr string) (net.Conn, error) {
	d := net.Dialer{Timeout: 5 * time.Second}
	return d.DialContext(ctx, "tcp", addr)
}

func (s *Service) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	cancel := s.cancel
	closer := s.closer
	s.cancel = nil
	s.closer = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if closer != nil {
		_ = closer.Close()
	}
	s.wg.Wait()
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

func (s *Service) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErrorLocked(msg)
}

func (s *Service) setErrorLocked(msg string) {
	cur := s.Snapshot()
	cur.LastError = msg
	// Transient parse errors should not flip validity.
	s.last.Store(cur)
}

func autoDetectDevice() string {
	// Keep it intentionally tiny and predictable.
	candidates := []string{}
	for i := 0; i < 10; i++ {
		candidates = append(candidates, fmt.Sprintf("/dev/ttyACM%d", i))
	}
	for i := 0; i < 10; i++ {
		candidates = append(candidates, fmt.Sprintf("/dev/ttyUSB%d", i))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

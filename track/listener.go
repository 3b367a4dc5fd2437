// Package track supplies hand-landmark frames to the gesture
// interpreter. The detector itself runs out of process (a webcam +
// landmark model pipeline) and streams its results in; this package
// only ingests them.
package track

import (
	"bytes"
	"encoding/json"
	"log"
	"net"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/tannenbaum/gesture"
)

// Config holds listener settings
type Config struct {
	// Address to bind for the tracker's UDP stream
	Address string

	// ReadBufferSize bounds one datagram
	ReadBufferSize int
}

// DefaultConfig returns local-loopback defaults
func DefaultConfig() *Config {
	return &Config{
		Address:        "127.0.0.1:9464",
		ReadBufferSize: 64 * 1024,
	}
}

// Listener receives newline-delimited JSON landmark frames over UDP
// and keeps only the most recent one. The render loop samples at its
// own pace; missed frames are dropped by design, duplicates are
// filtered downstream by timestamp
type Listener struct {
	conn *net.UDPConn

	latest    atomic.Pointer[gesture.Frame]
	dropped   atomic.Uint64
	closeOnce sync.Once
	closeErr  error
}

// Listen binds the tracker port and starts the read loop
func Listen(cfg *Config) (*Listener, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	addr, err := net.ResolveUDPAddr("udp", cfg.Address)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, err
	}

	l := &Listener{conn: conn}
	go l.readLoop(cfg.ReadBufferSize)
	return l, nil
}

func (l *Listener) readLoop(bufSize int) {
	buf := make([]byte, bufSize)
	for {
		n, err := l.conn.Read(buf)
		if err != nil {
			// Closed or unrecoverable; the scene keeps running on
			// whatever frame arrived last
			return
		}
		if f, ok := decodeFrame(buf[:n]); ok {
			l.latest.Store(f)
		} else {
			l.dropped.Add(1)
		}
	}
}

// decodeFrame parses the last complete frame in a datagram. A tracker
// that batches frames per packet still yields latest-sample semantics
func decodeFrame(data []byte) (*gesture.Frame, bool) {
	lines := bytes.Split(bytes.TrimSpace(data), []byte{'\n'})
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSpace(lines[i])
		if len(line) == 0 {
			continue
		}
		var f gesture.Frame
		if err := json.Unmarshal(line, &f); err != nil {
			log.Printf("track: dropping malformed frame: %v", err)
			return nil, false
		}
		return &f, true
	}
	return nil, false
}

// Latest returns the most recently received frame, nil before the
// first one arrives
func (l *Listener) Latest() *gesture.Frame {
	return l.latest.Load()
}

// Dropped reports how many malformed payloads were discarded
func (l *Listener) Dropped() uint64 {
	return l.dropped.Load()
}

// Close stops the read loop and releases the socket. Idempotent
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.conn.Close()
	})
	return l.closeErr
}

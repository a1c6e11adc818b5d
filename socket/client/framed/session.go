/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package framed

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	libskt "github.com/nabbar/socketstream/socket"
	libtcp "github.com/nabbar/socketstream/socket/client/tcp"
	librun "github.com/nabbar/socketstream/runner/startstop"
	libtck "github.com/nabbar/socketstream/runner/ticker"
)

// session is the inner session (C4): it owns exactly one live connection's writer, reader task
// and optional heartbeat task. Everything past construction is touched exclusively by the
// controller task - the facade only ever reaches it through the shared writerCell and
// connStateCell, never by holding a direct reference to its reader/heartbeat handles.
type session struct {
	cfg   Config
	cell  *writerCell
	state *connStateCell
	log   *logrus.Entry

	// reconnGate serializes reconnect attempts. The controller never calls reconnect from two
	// goroutines at once, so in normal operation this never blocks; it exists so the design
	// matches the teacher's semaphore-backed mutex convention and so a future caller outside the
	// controller cannot overlap a reconnect with another.
	reconnGate *semaphore.Weighted

	mu     sync.Mutex
	reader librun.StartStop
	hb     libtck.Ticker
}

func newSession(cfg Config, cell *writerCell, state *connStateCell, log *logrus.Entry) *session {
	return &session{
		cfg:        cfg,
		cell:       cell,
		state:      state,
		log:        log,
		reconnGate: semaphore.NewWeighted(1),
	}
}

func serverName(url string) string {
	host, _, err := net.SplitHostPort(url)
	if err != nil {
		return url
	}
	return host
}

// open dials a fresh transport, installs it into the shared writer cell, and spawns the reader
// (and, if configured, the heartbeat) task bound to it.
func (s *session) open(ctx context.Context) error {
	cli, err := libtcp.New(s.cfg.URL)
	if err != nil {
		return err
	}

	if s.cfg.Mode == ModeTLS {
		if err = cli.SetTLS(true, s.cfg.TLSConfig, serverName(s.cfg.URL)); err != nil {
			return err
		}
	}

	cli.RegisterFuncInfo(s.cfg.OnTransportEvent)
	cli.RegisterFuncError(func(errs ...error) {
		if s.cfg.OnTransportError == nil {
			return
		}
		for _, e := range errs {
			if fe := libskt.ErrorFilter(e); fe != nil {
				s.cfg.OnTransportError(fe)
			}
		}
	})

	if err = cli.Connect(ctx); err != nil {
		return err
	}

	s.cell.set(cli)

	reader := librun.New(readerLoop(cli, s.cfg, s.log), func(context.Context) error { return nil })
	if err = reader.Start(ctx); err != nil {
		return err
	}

	var hb libtck.Ticker
	if !s.cfg.Heartbeat.IsZero() {
		payload := append(append([]byte(nil), s.cfg.Heartbeat.Payload...), s.cfg.Suffix...)
		hb = libtck.New(s.cfg.Heartbeat.Period.Time(), heartbeatTick(s.cell, s.state, payload, s.log))
		if err = hb.Start(ctx); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.reader = reader
	s.hb = hb
	s.mu.Unlock()

	return nil
}

// isAlive reports whether the current reader task is still running.
func (s *session) isAlive() bool {
	s.mu.Lock()
	reader := s.reader
	s.mu.Unlock()

	return reader != nil && reader.IsRunning()
}

// teardown shuts the current generation's tasks down and clears the session's handles. Tolerates
// being called on an already-dead generation.
func (s *session) teardown(ctx context.Context) error {
	s.mu.Lock()
	reader := s.reader
	hb := s.hb
	s.reader = nil
	s.hb = nil
	s.mu.Unlock()

	err := shutdownInner(ctx, s.cell, reader, hb)
	if err != nil {
		s.log.WithError(err).Warn("connection shutdown did not complete before its deadline")
	}
	return err
}

// reconnect replaces a dead connection generation with a fresh one. Both the teardown of the old
// generation and the dial of the new one run under the single cfg.ReconnectTimeout deadline, so a
// slow-to-close old connection cannot let one reconnect attempt exceed its configured budget. On
// failure the state is left at RECONNECTING; the controller decides the next move.
func (s *session) reconnect(ctx context.Context) error {
	if !s.reconnGate.TryAcquire(1) {
		return ErrReconnectInProgress
	}
	defer s.reconnGate.Release(1)

	s.state.store(stateReconnecting)

	// The deadline cancels rctx only while the attempt is in flight; once open succeeds the timer
	// is stopped, so the new reader/heartbeat tasks started under rctx keep running.
	rctx, cancel := context.WithCancel(ctx)
	deadline := time.AfterFunc(s.cfg.reconnectTimeout(), cancel)

	_ = s.teardown(rctx)

	if err := s.open(rctx); err != nil {
		deadline.Stop()
		cancel()
		return err
	}
	deadline.Stop()

	s.state.store(stateActive)
	return nil
}

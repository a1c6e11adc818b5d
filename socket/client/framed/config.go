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

// Package framed implements a long-lived, heartbeating, self-reconnecting TCP (optionally TLS)
// client. It delivers inbound bytes split on a configured suffix to a per-frame handler, allows
// sending at any time the connection is active, and transparently replaces a dead connection
// with a fresh one under a supervising controller task.
package framed

import (
	"errors"
	"time"

	libtls "github.com/nabbar/socketstream/certificates"
	libdur "github.com/nabbar/socketstream/duration"
	libskt "github.com/nabbar/socketstream/socket"
	sckcfg "github.com/nabbar/socketstream/socket/config"
)

// CheckInterval is how often the controller polls the disconnect flag and the inner session's
// liveness.
const CheckInterval = 10 * time.Millisecond

// RetryInterval is the pause between two failed reconnect attempts.
const RetryInterval = 1 * time.Second

// DefaultReconnectTimeout is used when Config.ReconnectTimeout is zero.
const DefaultReconnectTimeout = 30 * time.Second

// sendActiveWait bounds how long Send waits for the state to become ACTIVE before failing.
const sendActiveWait = 2 * time.Second

// sendActivePoll is the polling granularity of the wait above.
const sendActivePoll = 1 * time.Millisecond

// closeDrain bounds how long Close waits for the controller to reach CLOSED.
const closeDrain = 5 * time.Second

// closePoll is the polling granularity of the wait above.
const closePoll = 10 * time.Millisecond

// shutdownDeadline bounds one full ordered shutdown of the inner session's tasks.
const shutdownDeadline = 5 * time.Second

// shutdownDrainGrace is the pause after closing the writer, before aborting tasks that have not
// exited on their own.
const shutdownDrainGrace = 100 * time.Millisecond

// ErrSuffixEmpty is returned by Connect when Config.Suffix is empty.
var ErrSuffixEmpty = errors.New("socket/client/framed: suffix must not be empty")

// ErrHandlerRequired is returned by Connect when Config.Handler is nil.
var ErrHandlerRequired = errors.New("socket/client/framed: handler is required")

// ErrURLRequired is returned by Connect when Config.URL is empty.
var ErrURLRequired = errors.New("socket/client/framed: url is required")

// Mode selects whether the transport is upgraded to TLS after dialing.
type Mode uint8

const (
	// ModePlain is a bare TCP connection.
	ModePlain Mode = iota
	// ModeTLS upgrades the connection to TLS immediately after the TCP dial completes.
	ModeTLS
)

// Heartbeat configures the periodic keep-alive payload sent while the connection is ACTIVE.
type Heartbeat struct {
	// Period is the interval between two heartbeat writes.
	Period libdur.Duration
	// Payload is the fixed bytes sent before Suffix on every heartbeat tick.
	Payload []byte
}

// IsZero reports whether no heartbeat was configured.
func (h Heartbeat) IsZero() bool {
	return h.Period == 0 && len(h.Payload) == 0
}

// Config is the immutable-after-construction configuration of a framed Client.
type Config struct {
	// URL is the host:port to dial. Its host portion also serves as the TLS server name.
	URL string
	// Mode selects Plain or TLS.
	Mode Mode
	// TLSConfig supplies root CAs / client certificate material when Mode is ModeTLS. A nil
	// TLSConfig with Mode ModeTLS uses the system root pool.
	TLSConfig libtls.TLSConfig

	// Suffix is the non-empty frame delimiter used both to split inbound bytes and to terminate
	// every outbound write.
	Suffix []byte
	// Handler is invoked once per inbound frame, with the suffix already stripped. It is called
	// sequentially from the reader task; it must never be invoked concurrently with itself.
	Handler func(frame []byte) error

	// Heartbeat optionally configures a periodic keep-alive. Zero value disables it.
	Heartbeat Heartbeat

	// ReconnectTimeout bounds a single reconnect attempt. Zero uses DefaultReconnectTimeout.
	ReconnectTimeout libdur.Duration
	// MaxReconnectionTries caps the number of consecutive failed reconnect attempts before the
	// client gives up and transitions to CLOSED. Zero means unbounded.
	MaxReconnectionTries uint

	// OnTransportEvent, when set, is forwarded every connection lifecycle notification the
	// underlying transport produces (dial, new connection, read, write, close). It is additive:
	// the framed layer does not interpret these events itself.
	OnTransportEvent libskt.FuncInfo

	// OnTransportError, when set, receives transport-level background errors (after
	// socket.ErrorFilter has dropped the expected "closed by us" noise).
	OnTransportError libskt.FuncError

	// PostConnection is invoked once, after the first synchronous connect succeeds.
	PostConnection func()
	// PostReconnection is invoked after every successful reconnect.
	PostReconnection func()
	// PostDisconnection is invoked once, after a user-initiated Close completes shutdown.
	PostDisconnection func()
}

// NewConfig builds a Config's transport fields (URL, Mode, TLSConfig) from a declarative
// socket/config.Client, validating the stream requirement and materializing the TLS material
// eagerly so a bad certificate is reported at construction time rather than on first dial. The
// framing and lifecycle fields (Suffix, Handler, Heartbeat, callbacks, ...) are left zero for the
// caller to fill in.
func NewConfig(c sckcfg.Client) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	if !c.Network.IsStream() {
		return Config{}, ErrInvalidTransport
	}

	cfg := Config{URL: c.Address}

	if c.TLS.Enabled {
		cfg.Mode = ModeTLS

		tc, err := c.TLS.Config.New()
		if err != nil {
			return Config{}, err
		}
		cfg.TLSConfig = tc
	}

	return cfg, nil
}

func (c Config) reconnectTimeout() time.Duration {
	if c.ReconnectTimeout <= 0 {
		return DefaultReconnectTimeout
	}
	return c.ReconnectTimeout.Time()
}

// Validate checks the fields Connect requires to be non-empty/non-nil. It does not attempt to
// dial.
func (c Config) Validate() error {
	if c.URL == "" {
		return ErrURLRequired
	}
	if len(c.Suffix) == 0 {
		return ErrSuffixEmpty
	}
	if c.Handler == nil {
		return ErrHandlerRequired
	}
	return nil
}

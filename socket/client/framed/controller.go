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
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// controllerLoop builds the start function for the controller task (C5): every CheckInterval it
// reads the disconnect flag and the inner session's liveness and acts on exactly one of four
// cases. It is the sole writer of stateClosed, written once, immediately before it returns.
func controllerLoop(s *session, disconnect *atomic.Bool, cfg Config, retries *atomic.Uint32, log *logrus.Entry) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				s.state.store(stateClosed)
				return nil
			case <-time.After(CheckInterval):
			}

			d := disconnect.Load()
			alive := s.isAlive()

			switch {
			case !d && alive:
				// nothing to do this tick

			case !d && !alive:
				if err := s.reconnect(ctx); err != nil {
					n := retries.Add(1)
					if cfg.MaxReconnectionTries > 0 && uint(n) >= cfg.MaxReconnectionTries {
						log.WithError(err).Warn("reconnection attempts exhausted, giving up")
						s.state.store(stateClosed)
						return nil
					}

					select {
					case <-ctx.Done():
						s.state.store(stateClosed)
						return nil
					case <-time.After(RetryInterval):
					}
				} else {
					retries.Store(0)
					safeCall(cfg.PostReconnection)
				}

			case d:
				_ = s.teardown(ctx)
				safeCall(cfg.PostDisconnection)
				s.state.store(stateClosed)
				return nil
			}
		}
	}
}

// safeCall invokes an optional nullary callback, tolerating a nil fn.
func safeCall(fn func()) {
	if fn == nil {
		return
	}
	fn()
}

/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package ticker runs a function periodically under a time.Ticker until stopped. It is the
// building block socket/client/framed uses for the heartbeat task.
package ticker

import (
	"context"
	"time"
)

// defaultDuration is used in place of any non-positive duration passed to New.
const defaultDuration = 30 * time.Second

// Ticker runs fn every duration (or defaultDuration if duration <= 0) until stopped.
type Ticker interface {
	// Start launches the ticking loop and returns once it is running. Calling Start while
	// already running first stops the previous loop.
	Start(ctx context.Context) error

	// Stop halts the ticking loop and waits for the in-flight tick, if any, to finish.
	Stop(ctx context.Context) error

	// Restart stops the loop if running, then starts it again.
	Restart(ctx context.Context) error

	// IsRunning reports whether the loop is currently active.
	IsRunning() bool

	// Uptime reports how long the loop has been running, zero when not running.
	Uptime() time.Duration

	// ErrorsLast returns the most recent non-nil error fn returned since the last Start, or nil.
	ErrorsLast() error

	// ErrorsList returns every non-nil error fn has returned since the last Start (Start and
	// Restart clear the list), oldest first.
	ErrorsList() []error
}

// New builds a Ticker. A nil fn is accepted and treated as a no-op each tick.
func New(duration time.Duration, fn func(ctx context.Context, tck *time.Ticker) error) Ticker {
	if duration <= 0 {
		duration = defaultDuration
	}

	return &ticker{
		duration: duration,
		fn:       fn,
	}
}

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

// Package startstop wraps a pair of start/stop functions into a supervised background task:
// Start launches the start function in its own goroutine and returns immediately, Stop cancels
// it and waits for the stop function to run. It is the building block the reader and controller
// tasks of socket/client/framed are built from (the heartbeat task uses runner/ticker).
package startstop

import (
	"context"
	"time"
)

// StartStop supervises one background task built from a start and a stop function.
type StartStop interface {
	// Start launches start(ctx) in its own goroutine and returns immediately. Calling Start
	// while already running first stops the previous instance.
	Start(ctx context.Context) error

	// Stop cancels the running start function and waits for both it and the stop function to
	// return. Safe to call when not running, and safe to call more than once concurrently.
	Stop(ctx context.Context) error

	// Restart stops the task if running, then starts it again. Safe to call when not running.
	Restart(ctx context.Context) error

	// IsRunning reports whether the start function is currently executing.
	IsRunning() bool

	// Uptime reports how long the task has been running, zero when not running.
	Uptime() time.Duration

	// ErrorsLast returns the most recently recorded error, or nil if none has occurred.
	ErrorsLast() error

	// ErrorsList returns every error recorded since the task was created, oldest first.
	ErrorsList() []error
}

// New builds a StartStop from a start and a stop function. Either may be nil: invoking a nil
// function records a descriptive error instead of panicking.
func New(start, stop func(ctx context.Context) error) StartStop {
	return &runner{
		fctStart: start,
		fctStop:  stop,
	}
}

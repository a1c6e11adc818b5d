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

package startstop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var errInvalidStart = errors.New("startstop: invalid start function")
var errInvalidStop = errors.New("startstop: invalid stop function")

type runner struct {
	fctStart func(ctx context.Context) error
	fctStop  func(ctx context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	running   atomic.Bool
	startedAt atomic.Int64

	errMu sync.Mutex
	errs  []error
}

func (r *runner) addErr(err error) {
	if err == nil {
		return
	}

	r.errMu.Lock()
	defer r.errMu.Unlock()

	r.errs = append(r.errs, err)
}

func (r *runner) ErrorsLast() error {
	r.errMu.Lock()
	defer r.errMu.Unlock()

	if len(r.errs) == 0 {
		return nil
	}

	return r.errs[len(r.errs)-1]
}

func (r *runner) ErrorsList() []error {
	r.errMu.Lock()
	defer r.errMu.Unlock()

	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}

func (r *runner) IsRunning() bool {
	return r.running.Load()
}

func (r *runner) Uptime() time.Duration {
	if !r.running.Load() {
		return 0
	}

	at := r.startedAt.Load()
	if at == 0 {
		return 0
	}

	return time.Since(time.Unix(0, at))
}

// stopLocked cancels whatever instance is currently tracked and waits for its goroutine to
// exit, then runs the stop function. Must be called with r.mu held; it releases and re-acquires
// the lock around the wait so Start/Stop never block each other's bookkeeping.
func (r *runner) stopLocked(ctx context.Context) error {
	cancel := r.cancel
	done := r.done

	if cancel == nil {
		return nil
	}

	r.mu.Unlock()
	cancel()
	<-done
	r.mu.Lock()

	r.cancel = nil
	r.done = nil

	if r.fctStop == nil {
		err := errInvalidStop
		r.addErr(err)
		return nil
	}

	err := r.fctStop(ctx)
	if err != nil {
		r.addErr(err)
	}

	return nil
}

func (r *runner) Start(ctx context.Context) error {
	r.mu.Lock()
	_ = r.stopLocked(ctx)

	cctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	r.cancel = cancel
	r.done = done
	r.mu.Unlock()

	go func() {
		defer close(done)

		r.startedAt.Store(time.Now().UnixNano())
		r.running.Store(true)

		var err error
		if r.fctStart == nil {
			err = errInvalidStart
		} else {
			err = r.fctStart(cctx)
		}

		r.running.Store(false)
		r.addErr(err)
	}()

	return nil
}

func (r *runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stopLocked(ctx)
}

func (r *runner) Restart(ctx context.Context) error {
	return r.Start(ctx)
}

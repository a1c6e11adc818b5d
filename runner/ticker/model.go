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

package ticker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

type ticker struct {
	duration time.Duration
	fn       func(ctx context.Context, tck *time.Ticker) error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	running   atomic.Bool
	startedAt atomic.Int64

	errMu sync.Mutex
	errs  []error
}

func (t *ticker) addErr(err error) {
	if err == nil {
		return
	}

	t.errMu.Lock()
	defer t.errMu.Unlock()

	t.errs = append(t.errs, err)
}

func (t *ticker) ErrorsLast() error {
	t.errMu.Lock()
	defer t.errMu.Unlock()

	if len(t.errs) == 0 {
		return nil
	}

	return t.errs[len(t.errs)-1]
}

func (t *ticker) ErrorsList() []error {
	t.errMu.Lock()
	defer t.errMu.Unlock()

	out := make([]error, len(t.errs))
	copy(out, t.errs)
	return out
}

func (t *ticker) IsRunning() bool {
	return t.running.Load()
}

func (t *ticker) Uptime() time.Duration {
	if !t.running.Load() {
		return 0
	}

	at := t.startedAt.Load()
	if at == 0 {
		return 0
	}

	return time.Since(time.Unix(0, at))
}

func (t *ticker) stopLocked() {
	cancel := t.cancel
	done := t.done

	if cancel == nil {
		return
	}

	t.mu.Unlock()
	cancel()
	<-done
	t.mu.Lock()

	t.cancel = nil
	t.done = nil
}

func (t *ticker) runOnce(ctx context.Context, tck *time.Ticker) {
	defer func() {
		if r := recover(); r != nil {
			t.addErr(fmt.Errorf("ticker: recovered panic: %v", r))
		}
	}()

	if t.fn == nil {
		return
	}

	t.addErr(t.fn(ctx, tck))
}

func (t *ticker) Start(ctx context.Context) error {
	t.mu.Lock()
	t.stopLocked()

	cctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	t.errMu.Lock()
	t.errs = nil
	t.errMu.Unlock()

	t.startedAt.Store(time.Now().UnixNano())
	t.running.Store(true)

	go func() {
		defer close(done)
		defer t.running.Store(false)

		tck := time.NewTicker(t.duration)
		defer tck.Stop()

		for {
			select {
			case <-cctx.Done():
				return
			case <-tck.C:
				t.runOnce(cctx, tck)
			}
		}
	}()

	return nil
}

func (t *ticker) Stop(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	return nil
}

func (t *ticker) Restart(ctx context.Context) error {
	return t.Start(ctx)
}

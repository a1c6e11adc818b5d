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

package ticker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/nabbar/socketstream/runner/ticker"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var errTick = errors.New("tick failed")

var _ = Describe("Construction", func() {
	It("starts idle with zero uptime", func() {
		tick := New(100*time.Millisecond, func(ctx context.Context, tck *time.Ticker) error { return nil })

		Expect(tick.IsRunning()).To(BeFalse())
		Expect(tick.Uptime()).To(Equal(time.Duration(0)))
	})

	It("tolerates a nil function", func() {
		Expect(func() { New(10 * time.Millisecond, nil) }).ToNot(Panic())
	})

	It("falls back to a default duration for non-positive values", func() {
		tick := New(0, func(ctx context.Context, tck *time.Ticker) error { return nil })
		Expect(tick).ToNot(BeNil())
	})
})

var _ = Describe("Lifecycle", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	})

	AfterEach(func() {
		cancel()
	})

	It("ticks at the configured interval", func() {
		var counter atomic.Int32
		tick := New(20*time.Millisecond, func(ctx context.Context, tck *time.Ticker) error {
			counter.Add(1)
			return nil
		})

		Expect(tick.Start(ctx)).ToNot(HaveOccurred())
		Expect(tick.IsRunning()).To(BeTrue())

		Eventually(func() int32 { return counter.Load() }, time.Second).Should(BeNumerically(">=", 2))

		Expect(tick.Stop(ctx)).ToNot(HaveOccurred())
		Expect(tick.IsRunning()).To(BeFalse())
	})

	It("stops the previous loop before starting a new one", func() {
		var counter atomic.Int32
		tick := New(20*time.Millisecond, func(ctx context.Context, tck *time.Ticker) error {
			counter.Add(1)
			return nil
		})

		Expect(tick.Start(ctx)).ToNot(HaveOccurred())
		time.Sleep(60 * time.Millisecond)

		Expect(tick.Start(ctx)).ToNot(HaveOccurred())
		Expect(tick.IsRunning()).To(BeTrue())

		_ = tick.Stop(ctx)
	})

	It("starts the loop through Restart", func() {
		tick := New(20*time.Millisecond, func(ctx context.Context, tck *time.Ticker) error {
			return nil
		})

		Expect(tick.Restart(ctx)).ToNot(HaveOccurred())
		Expect(tick.IsRunning()).To(BeTrue())

		_ = tick.Stop(ctx)
	})

	It("tracks uptime while running", func() {
		tick := New(10*time.Millisecond, func(ctx context.Context, tck *time.Ticker) error { return nil })

		Expect(tick.Start(ctx)).ToNot(HaveOccurred())
		time.Sleep(30 * time.Millisecond)

		Expect(tick.Uptime()).To(BeNumerically(">=", 1*time.Millisecond))

		_ = tick.Stop(ctx)
		Expect(tick.Uptime()).To(BeZero())
	})
})

var _ = Describe("Error handling", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	})

	AfterEach(func() {
		cancel()
	})

	It("collects errors returned by the tick function", func() {
		testErr := errTick
		tick := New(20*time.Millisecond, func(ctx context.Context, tck *time.Ticker) error {
			return testErr
		})

		Expect(tick.Start(ctx)).ToNot(HaveOccurred())
		time.Sleep(80 * time.Millisecond)
		Expect(tick.Stop(ctx)).ToNot(HaveOccurred())

		Expect(tick.ErrorsLast()).To(MatchError(testErr))
		Expect(tick.ErrorsList()).ToNot(BeEmpty())
	})

	It("clears errors on restart", func() {
		tick := New(20*time.Millisecond, func(ctx context.Context, tck *time.Ticker) error {
			return errTick
		})

		Expect(tick.Start(ctx)).ToNot(HaveOccurred())
		time.Sleep(60 * time.Millisecond)
		Expect(tick.ErrorsLast()).ToNot(BeNil())

		Expect(tick.Restart(ctx)).ToNot(HaveOccurred())
		Expect(tick.ErrorsList()).To(BeEmpty())

		_ = tick.Stop(ctx)
	})
})

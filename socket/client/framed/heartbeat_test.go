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

package framed_test

import (
	"context"
	"time"

	sckfrm "github.com/nabbar/socketstream/socket/client/framed"

	libdur "github.com/nabbar/socketstream/duration"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Heartbeat cadence", func() {
	var ctx context.Context
	var cancel context.CancelFunc

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	})

	AfterEach(func() {
		cancel()
	})

	It("writes the configured ping payload on every tick while the connection is active", func() {
		addr := getTestAddress()
		srv := startFrameServer(addr, []byte("\n"))
		defer srv.Close()

		period, err := libdur.Parse("200ms")
		Expect(err).ToNot(HaveOccurred())

		cli, err := sckfrm.Connect(ctx, sckfrm.Config{
			URL:     addr,
			Suffix:  []byte("\n"),
			Handler: func(frame []byte) error { return nil },
			Heartbeat: sckfrm.Heartbeat{
				Period:  period,
				Payload: []byte("ping"),
			},
		})
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close(ctx)

		// Mirrors the original's test_heartbeat: a 200ms period observed for ~1s should produce
		// several pings, well clear of one-shot noise from the initial connect.
		Eventually(func() int { return srv.countFrames([]byte("ping")) }, time.Second, 20*time.Millisecond).
			Should(BeNumerically(">=", 3))
	})

	It("resumes heartbeats once a dropped connection is re-established", func() {
		addr := getTestAddress()
		srv := startFrameServer(addr, []byte("\n"))
		defer srv.Close()

		period, err := libdur.Parse("50ms")
		Expect(err).ToNot(HaveOccurred())

		cli, err := sckfrm.Connect(ctx, sckfrm.Config{
			URL:     addr,
			Suffix:  []byte("\n"),
			Handler: func(frame []byte) error { return nil },
			Heartbeat: sckfrm.Heartbeat{
				Period:  period,
				Payload: []byte("ping"),
			},
		})
		Expect(err).ToNot(HaveOccurred())
		defer cli.Close(ctx)

		Eventually(func() int { return srv.countFrames([]byte("ping")) }, time.Second, 10*time.Millisecond).
			Should(BeNumerically(">=", 1))

		srv.dropAll()
		Eventually(cli.IsActive, 5*time.Second, 10*time.Millisecond).Should(BeTrue())

		// Reconnecting briefly suppresses heartbeat ticks, but once active again on the new
		// generation, pings resume - the count keeps climbing rather than freezing at its
		// pre-drop value.
		before := srv.countFrames([]byte("ping"))
		Eventually(func() int { return srv.countFrames([]byte("ping")) }, time.Second, 20*time.Millisecond).
			Should(BeNumerically(">", before))
	})
})

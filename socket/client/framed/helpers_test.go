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
	"bytes"
	"errors"
	"net"
	"sync"
	"sync/atomic"
)

// errHandlerBoom is a sentinel used by tests that exercise handler-error recovery.
var errHandlerBoom = errors.New("handler boom")

// atomicBool is a tiny test-only convenience wrapper used where an atomic.Bool's zero value
// would otherwise need a pointer to be shared across a closure.
type atomicBool struct {
	v atomic.Bool
}

func (a *atomicBool) set(b bool) { a.v.Store(b) }
func (a *atomicBool) get() bool  { return a.v.Load() }

// frameServer accepts TCP connections and echoes every frame (delimited by suffix) it receives
// back to the sender, unmodified. It tracks how many connections it has accepted so reconnect
// tests can observe a new generation being established.
type frameServer struct {
	ln       net.Listener
	suffix   []byte
	accepted atomic.Int32

	mu     sync.Mutex
	conns  []net.Conn
	frames [][]byte
}

func startFrameServer(addr string, suffix []byte) *frameServer {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		panic(err)
	}

	s := &frameServer{ln: ln, suffix: suffix}

	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			s.accepted.Add(1)

			s.mu.Lock()
			s.conns = append(s.conns, c)
			s.mu.Unlock()

			go s.serve(c)
		}
	}()

	return s
}

func (s *frameServer) serve(c net.Conn) {
	defer c.Close()

	buf := make([]byte, 0, 4096)
	tmp := make([]byte, 4096)

	for {
		n, err := c.Read(tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)
			for {
				idx := bytes.Index(buf, s.suffix)
				if idx < 0 {
					break
				}
				frame := append([]byte(nil), buf[:idx]...)

				s.mu.Lock()
				s.frames = append(s.frames, frame)
				s.mu.Unlock()

				if _, werr := c.Write(append(append([]byte(nil), frame...), s.suffix...)); werr != nil {
					return
				}
				buf = append(buf[:0], buf[idx+len(s.suffix):]...)
			}
		}
		if err != nil {
			return
		}
	}
}

// acceptedCount returns the number of connections accepted so far.
func (s *frameServer) acceptedCount() int32 {
	return s.accepted.Load()
}

// countFrames returns how many received frames exactly equal payload, across every connection
// generation accepted so far.
func (s *frameServer) countFrames(payload []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, f := range s.frames {
		if bytes.Equal(f, payload) {
			n++
		}
	}
	return n
}

// dropAll forcibly closes every connection accepted so far, simulating a transport failure that
// the client must detect and reconnect from.
func (s *frameServer) dropAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.conns {
		_ = c.Close()
	}
	s.conns = nil
}

func (s *frameServer) Close() {
	_ = s.ln.Close()
	s.dropAll()
}

// refusingAddress returns an address nothing listens on, for connection-refused scenarios.
func refusingAddress() string {
	addr := getTestAddress()
	return addr
}

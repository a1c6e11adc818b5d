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

// Package socket holds the small vocabulary shared by every socket/client/* implementation:
// connection lifecycle states, the two observer callback shapes, and the one
// piece of error-filtering logic every implementation needs when it tears down a connection it
// itself initiated the close of.
package socket

import (
	"errors"
	"io"
	"net"
)

// DefaultBufferSize is the read buffer size used by implementations that don't size their own.
const DefaultBufferSize = 32 * 1024

// EOL is the newline byte, the default frame delimiter for line-oriented protocols.
const EOL = byte('\n')

// Reader is satisfied by anything a connection's inbound half can be read from.
type Reader interface {
	io.Reader
	io.Closer
}

// Writer is satisfied by anything a connection's outbound half can be written to.
type Writer interface {
	io.Writer
	io.Closer
}

// FuncError is a sink for non-fatal background errors (a failed heartbeat write, a read error
// already being handled by the reconnect logic, ...). Implementations call it with zero or more
// errors; a nil FuncError is always safe to invoke through a nil-check at the call site.
type FuncError func(errs ...error)

// FuncInfo is a sink for connection lifecycle notifications, fired with the local/remote
// addresses of the connection and the ConnState being entered.
type FuncInfo func(local, remote net.Addr, state ConnState)

// ConnState names a point in a single connection's lifecycle, from dial to close.
type ConnState uint8

const (
	ConnectionDial ConnState = iota
	ConnectionNew
	ConnectionRead
	ConnectionCloseRead
	ConnectionHandler
	ConnectionWrite
	ConnectionCloseWrite
	ConnectionClose
)

// String renders the state the way log lines and RegisterFuncInfo consumers expect.
func (c ConnState) String() string {
	switch c {
	case ConnectionDial:
		return "Dial Connection"
	case ConnectionNew:
		return "New Connection"
	case ConnectionRead:
		return "Read Incoming Stream"
	case ConnectionCloseRead:
		return "Close Incoming Stream"
	case ConnectionHandler:
		return "Run HandlerFunc"
	case ConnectionWrite:
		return "Write Outgoing Steam"
	case ConnectionCloseWrite:
		return "Close Outgoing Stream"
	case ConnectionClose:
		return "Close Connection"
	default:
		return "unknown connection state"
	}
}

// ErrorFilter drops the one error every deliberate Close() produces on whichever goroutine is
// still blocked in a Read/Write on the same file descriptor: "use of closed network connection".
// That error wraps net.ErrClosed and is matched with errors.Is. Any other error, including one
// whose message merely contains that phrase without wrapping net.ErrClosed, is returned
// unchanged. A nil err returns nil.
func ErrorFilter(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, net.ErrClosed) {
		return nil
	}

	return err
}

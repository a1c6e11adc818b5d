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

// Package tcp is a bare TCP/TLS transport: dial one address, expose the resulting connection
// as an io.Reader/io.Writer pair, reconnect on demand. It carries no framing, no heartbeat and
// no retry policy of its own - those live one layer up, in socket/client/framed, which is built
// entirely on top of New and the ClientTCP methods below.
package tcp

import (
	"context"

	libtls "github.com/nabbar/socketstream/certificates"
	libskt "github.com/nabbar/socketstream/socket"
)

// ClientTCP is a single outbound TCP (optionally TLS) connection. It is not safe to call Read,
// Write and Close concurrently from multiple goroutines without external synchronization other
// than the one each method already does on its own fields; a typical caller has exactly one
// reader goroutine and one writer goroutine, which is the shape socket/client/framed uses.
type ClientTCP interface {
	libskt.Reader
	libskt.Writer

	// Connect dials the configured address, honoring ctx for both the dial and (when TLS is
	// enabled) the handshake. Calling Connect while already connected replaces the connection.
	Connect(ctx context.Context) error

	// IsConnected reports whether the client currently holds a live connection.
	IsConnected() bool

	// SetTLS toggles the TLS upgrade applied by the next Connect. It has no effect on an
	// already-established connection.
	SetTLS(enabled bool, cfg libtls.TLSConfig, serverName string) error

	// RegisterFuncError installs the sink for non-fatal background errors. Passing nil disables
	// notification without affecting behavior.
	RegisterFuncError(fct libskt.FuncError)

	// RegisterFuncInfo installs the sink for connection lifecycle notifications. Passing nil
	// disables notification without affecting behavior.
	RegisterFuncInfo(fct libskt.FuncInfo)
}

// New validates address as a TCP endpoint and returns a ClientTCP ready to Connect. It does not
// dial: address validation only.
func New(address string) (ClientTCP, error) {
	if address == "" {
		return nil, ErrAddress
	}

	if _, err := resolveTCP(address); err != nil {
		return nil, err
	}

	return &client{address: address}, nil
}

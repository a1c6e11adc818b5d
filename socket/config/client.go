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

// Package config holds the declarative configuration structs shared by socket/client/*
// implementations.
package config

import (
	"errors"
	"net"

	libtls "github.com/nabbar/socketstream/certificates"
	libptc "github.com/nabbar/socketstream/network/protocol"
)

// ErrInvalidProtocol is returned by Validate when Network is NetworkEmpty or any other enum value
// with no Code().
var ErrInvalidProtocol = errors.New("socket/config: invalid or unsupported protocol")

// ClientTLS configures the optional TLS upgrade layered over a client connection.
type ClientTLS struct {
	// Enabled turns on the TLS upgrade after the underlying transport connects.
	Enabled bool
	// Config supplies root CAs / client certificate material. A zero Config is valid: it means
	// "use the system root pool, no client certificate".
	Config libtls.Config
	// ServerName names the TLS peer. Validate requires it when Enabled is true on a TCP-family
	// protocol. socket/client/framed.NewConfig does not carry it over: the framed client takes
	// the TLS server name from the host part of Address.
	ServerName string
}

// Client is the declarative configuration for a single outbound socket connection.
type Client struct {
	Network libptc.NetworkProtocol
	Address string
	TLS     ClientTLS
}

// Validate checks that Network is a protocol this config understands. For the TCP family it also
// checks that Address resolves and that TLS.ServerName is set when TLS is enabled; Unix and
// non-stream protocols are accepted without checking Address. It does not attempt to connect.
func (c Client) Validate() error {
	if c.Network.Code() == "" {
		return ErrInvalidProtocol
	}

	if !c.Network.IsStream() {
		return nil
	}

	if c.Network == libptc.NetworkUnix {
		return nil
	}

	if _, err := net.ResolveTCPAddr(c.Network.Code(), c.Address); err != nil {
		return err
	}

	if c.TLS.Enabled && c.TLS.ServerName == "" {
		return errors.New("socket/config: TLS enabled without a server name")
	}

	return nil
}

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

package tcp

import (
	"context"
	"crypto/tls"
	"net"
	"sync"

	libtls "github.com/nabbar/socketstream/certificates"
	libskt "github.com/nabbar/socketstream/socket"
)

func resolveTCP(address string) (*net.TCPAddr, error) {
	a, err := net.ResolveTCPAddr("tcp", address)
	if err != nil {
		return nil, err
	}
	return a, nil
}

type client struct {
	address string

	mu   sync.Mutex
	conn net.Conn

	tlsEnabled    bool
	tlsConfig     libtls.TLSConfig
	tlsServerName string

	fctErr  libskt.FuncError
	fctInfo libskt.FuncInfo
}

func (c *client) fireInfo(local, remote net.Addr, state libskt.ConnState) {
	if c.fctInfo != nil {
		c.fctInfo(local, remote, state)
	}
}

func (c *client) fireErr(errs ...error) {
	if c.fctErr != nil {
		c.fctErr(errs...)
	}
}

func (c *client) SetTLS(enabled bool, cfg libtls.TLSConfig, serverName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tlsEnabled = enabled
	c.tlsConfig = cfg
	c.tlsServerName = serverName
	return nil
}

func (c *client) RegisterFuncError(fct libskt.FuncError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fctErr = fct
}

func (c *client) RegisterFuncInfo(fct libskt.FuncInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fctInfo = fct
}

func (c *client) Connect(ctx context.Context) error {
	c.fireInfo(nil, nil, libskt.ConnectionDial)

	var d net.Dialer
	cnx, err := d.DialContext(ctx, "tcp", c.address)
	if err != nil {
		c.fireErr(err)
		return err
	}

	c.mu.Lock()
	enabled, cfg, name := c.tlsEnabled, c.tlsConfig, c.tlsServerName
	c.mu.Unlock()

	if enabled {
		var tcfg *tls.Config
		if cfg != nil {
			tcfg = cfg.TLS(name)
		} else {
			tcfg = &tls.Config{ServerName: name}
		}

		tc := tls.Client(cnx, tcfg)
		if hErr := tc.HandshakeContext(ctx); hErr != nil {
			_ = cnx.Close()
			c.fireErr(hErr)
			return hErr
		}
		cnx = tc
	}

	c.mu.Lock()
	old := c.conn
	c.conn = cnx
	c.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}

	c.fireInfo(cnx.LocalAddr(), cnx.RemoteAddr(), libskt.ConnectionNew)
	return nil
}

func (c *client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn != nil
}

func (c *client) Read(p []byte) (int, error) {
	c.mu.Lock()
	cnx := c.conn
	c.mu.Unlock()

	if cnx == nil {
		return 0, ErrConnection
	}

	c.fireInfo(cnx.LocalAddr(), cnx.RemoteAddr(), libskt.ConnectionRead)

	n, err := cnx.Read(p)
	if err = libskt.ErrorFilter(err); err != nil {
		c.fireErr(err)
	}
	return n, err
}

func (c *client) Write(p []byte) (int, error) {
	c.mu.Lock()
	cnx := c.conn
	c.mu.Unlock()

	if cnx == nil {
		return 0, ErrConnection
	}

	c.fireInfo(cnx.LocalAddr(), cnx.RemoteAddr(), libskt.ConnectionWrite)

	n, err := cnx.Write(p)
	if err = libskt.ErrorFilter(err); err != nil {
		c.fireErr(err)
	}
	return n, err
}

func (c *client) Close() error {
	c.mu.Lock()
	cnx := c.conn
	c.conn = nil
	c.mu.Unlock()

	if cnx == nil {
		return ErrConnection
	}

	c.fireInfo(cnx.LocalAddr(), cnx.RemoteAddr(), libskt.ConnectionClose)
	return cnx.Close()
}

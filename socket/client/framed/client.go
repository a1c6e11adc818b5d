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

package framed

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	libtcp "github.com/nabbar/socketstream/socket/client/tcp"
	librun "github.com/nabbar/socketstream/runner/startstop"
)

// Client is the user-facing handle (C6): send bytes, query lifecycle state, close. It coordinates
// with the controller task exclusively through the shared disconnect flag and connection-state
// cell - it never touches the controller's session directly except to hand it a payload to write.
type Client interface {
	// Send waits (up to 2s) for the connection to be active, then writes payload followed by the
	// configured suffix as a single mutex-held batch. Returns ErrNotConnected if already closed,
	// ErrTimedOut if the wait for active expires.
	Send(payload []byte) error

	// IsActive reports state == ACTIVE and the disconnect flag is not set.
	IsActive() bool
	// IsReconnecting reports state == RECONNECTING.
	IsReconnecting() bool
	// IsDisconnecting reports that Close has been called. It stays true after CLOSED is reached.
	IsDisconnecting() bool
	// IsClosed reports state == CLOSED. Once true it never reverts.
	IsClosed() bool

	// Close requests an orderly shutdown, waiting up to 5s for the controller to reach CLOSED
	// before forcibly aborting it. Idempotent.
	Close(ctx context.Context) error
}

type client struct {
	cfg        Config
	cell       *writerCell
	state      *connStateCell
	disconnect *atomic.Bool
	session    *session
	controller librun.StartStop
}

// Connect performs one synchronous initial connect, spawns the controller task on success, and
// returns the facade. A failed initial connect returns the error and leaves nothing running.
func Connect(ctx context.Context, cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logrus.StandardLogger().WithField("component", "socket/client/framed")

	cell := &writerCell{}
	state := newConnStateCell(stateActive)
	sess := newSession(cfg, cell, state, log)

	if err := sess.open(ctx); err != nil {
		return nil, err
	}

	disconnect := &atomic.Bool{}
	retries := &atomic.Uint32{}

	ctrl := librun.New(controllerLoop(sess, disconnect, cfg, retries, log), func(context.Context) error { return nil })
	if err := ctrl.Start(ctx); err != nil {
		return nil, err
	}

	safeCall(cfg.PostConnection)

	return &client{
		cfg:        cfg,
		cell:       cell,
		state:      state,
		disconnect: disconnect,
		session:    sess,
		controller: ctrl,
	}, nil
}

func (c *client) IsActive() bool {
	return c.state.load() == stateActive && !c.disconnect.Load()
}

func (c *client) IsReconnecting() bool {
	return c.state.load() == stateReconnecting
}

func (c *client) IsDisconnecting() bool {
	return c.disconnect.Load()
}

func (c *client) IsClosed() bool {
	return c.state.load() == stateClosed
}

func (c *client) Send(payload []byte) error {
	if c.IsClosed() {
		return ErrNotConnected
	}

	deadline := time.Now().Add(sendActiveWait)
	for !c.IsActive() {
		if c.IsClosed() {
			return ErrNotConnected
		}
		if time.Now().After(deadline) {
			return ErrTimedOut
		}
		time.Sleep(sendActivePoll)
	}

	return c.cell.batch(func(cli libtcp.ClientTCP) error {
		if _, err := cli.Write(payload); err != nil {
			return err
		}
		if _, err := cli.Write(c.cfg.Suffix); err != nil {
			return err
		}
		return nil
	})
}

func (c *client) Close(ctx context.Context) error {
	c.disconnect.Store(true)

	deadline := time.Now().Add(closeDrain)
	for time.Now().Before(deadline) {
		if c.IsClosed() {
			return nil
		}
		time.Sleep(closePoll)
	}

	if !c.IsClosed() {
		return c.controller.Stop(ctx)
	}

	return nil
}

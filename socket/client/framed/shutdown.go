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
	"time"

	"golang.org/x/sync/errgroup"

	libtcp "github.com/nabbar/socketstream/socket/client/tcp"
	librun "github.com/nabbar/socketstream/runner/startstop"
	libtck "github.com/nabbar/socketstream/runner/ticker"
)

// shutdownInner performs the ordered quiesce of one connection generation's tasks: close the
// transport (flush + FIN), give the reader task a brief grace period to observe EOF and exit on
// its own, then abort whichever of reader/heartbeat has not. The 100ms grace sleep and the two
// aborts race against a shared 5s deadline; reader and heartbeat are aborted concurrently since
// neither depends on the other.
func shutdownInner(parent context.Context, cell *writerCell, reader librun.StartStop, hb libtck.Ticker) error {
	ctx, cancel := context.WithTimeout(parent, shutdownDeadline)
	defer cancel()

	_ = cell.batch(func(cli libtcp.ClientTCP) error {
		return cli.Close()
	})

	select {
	case <-time.After(shutdownDrainGrace):
	case <-ctx.Done():
	}

	g, gctx := errgroup.WithContext(ctx)

	if reader != nil && reader.IsRunning() {
		g.Go(func() error {
			return reader.Stop(gctx)
		})
	}

	if hb != nil && hb.IsRunning() {
		g.Go(func() error {
			return hb.Stop(gctx)
		})
	}

	errc := make(chan error, 1)
	go func() { errc <- g.Wait() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

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

	"github.com/sirupsen/logrus"

	libtcp "github.com/nabbar/socketstream/socket/client/tcp"
)

// heartbeatTick builds the per-tick function run by the heartbeat task's runner/ticker.Ticker.
// The payload is computed once by the caller (payload || suffix) so every tick only pays for the
// write, not for a repeated allocation/concatenation.
//
// On RECONNECTING the tick is skipped. On CLOSED the tick also writes nothing and returns, but it
// does not stop the ticker: the heartbeat task keeps ticking until its context ends or it is
// stopped. CLOSED is observed here when the controller exits on context cancellation, a path
// that writes CLOSED without tearing the session down.
func heartbeatTick(cell *writerCell, state *connStateCell, payloadWithSuffix []byte, log *logrus.Entry) func(ctx context.Context, tck *time.Ticker) error {
	return func(ctx context.Context, tck *time.Ticker) error {
		switch state.load() {
		case stateClosed:
			return nil
		case stateReconnecting:
			return nil
		}

		err := cell.batch(func(cli libtcp.ClientTCP) error {
			_, werr := cli.Write(payloadWithSuffix)
			return werr
		})
		if err != nil {
			log.WithError(err).Debug("heartbeat write failed")
		}
		return err
	}
}

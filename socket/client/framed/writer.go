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
	"errors"
	"sync"

	libtcp "github.com/nabbar/socketstream/socket/client/tcp"
)

// ErrNotConnected is returned by Send once the client is CLOSED, and by writerCell.batch while no
// transport has been installed yet. A teardown does not clear the cell: a batch run after one
// reaches the last installed (closed) transport and gets that transport's error instead.
var ErrNotConnected = errors.New("socket/client/framed: not connected")

// writerCell is the mutex-guarded, atomically-replaceable handle shared by the facade, the
// heartbeat task and the controller. Holders never keep a raw *tcp.ClientTCP across an await
// point: they call batch on the cell each time they need to write, so they always observe
// whichever transport the controller most recently installed.
type writerCell struct {
	mu  sync.Mutex
	cli libtcp.ClientTCP
}

// set installs a new transport, replacing (but not closing) whatever was there before - the
// caller is responsible for having already shut the previous one down.
func (w *writerCell) set(cli libtcp.ClientTCP) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.cli = cli
}

// current returns the transport currently installed, or nil.
func (w *writerCell) current() libtcp.ClientTCP {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.cli
}

// batch runs fn with exclusive access to the current transport, the unit of work being one
// send (payload + suffix) or one shutdown call. Returns ErrNotConnected if nothing is installed.
func (w *writerCell) batch(fn func(cli libtcp.ClientTCP) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cli == nil {
		return ErrNotConnected
	}

	return fn(w.cli)
}

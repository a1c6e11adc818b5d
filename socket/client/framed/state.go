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

import "sync/atomic"

// connState is the three-valued connection lifecycle. CLOSED is terminal; by convention it is
// written exactly once, by the controller task, immediately before it exits.
type connState int32

const (
	stateActive connState = iota
	stateReconnecting
	stateClosed
)

// connStateCell is a sequentially-consistent holder for connState, backed by atomic.Int32.
type connStateCell struct {
	v atomic.Int32
}

func newConnStateCell(initial connState) *connStateCell {
	c := &connStateCell{}
	c.v.Store(int32(initial))
	return c
}

func (c *connStateCell) load() connState {
	return connState(c.v.Load())
}

func (c *connStateCell) store(s connState) {
	c.v.Store(int32(s))
}

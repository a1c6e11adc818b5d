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

import "errors"

// ErrTimedOut is returned by Send when the connection does not become active within its
// active-wait budget.
var ErrTimedOut = errors.New("socket/client/framed: timed out")

// ErrReconnectInProgress is returned by reconnect when a previous reconnect attempt has not yet
// released the reconnection gate. The controller never calls reconnect concurrently with
// itself, so this only surfaces if reconnect is invoked from outside the controller task.
var ErrReconnectInProgress = errors.New("socket/client/framed: reconnect already in progress")

// ErrInvalidTransport is returned by NewConfig when the supplied socket/config.Client names a
// non-stream protocol (e.g. UDP); framing requires an ordered byte stream.
var ErrInvalidTransport = errors.New("socket/client/framed: transport is not a byte stream")

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
	"bytes"
	"context"

	"github.com/sirupsen/logrus"

	libskt "github.com/nabbar/socketstream/socket"
	libtcp "github.com/nabbar/socketstream/socket/client/tcp"
)

// readerLoop builds the start function for the reader task's startstop.StartStop: it reads from
// cli until EOF or error, splitting the accumulated buffer on cfg.Suffix and delivering every
// complete frame to cfg.Handler in byte-stream order. A handler error only breaks the inner
// split loop for the current read; buffered bytes beyond the broken frame are kept for the next
// read, matching the "preserve buffered bytes" guidance for handler-error recovery.
func readerLoop(cli libtcp.ClientTCP, cfg Config, log *logrus.Entry) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		buf := make([]byte, 0, libskt.DefaultBufferSize)
		tmp := make([]byte, libskt.DefaultBufferSize)

		for {
			n, err := cli.Read(tmp)
			if n > 0 {
				buf = append(buf, tmp[:n]...)

				for {
					idx := bytes.Index(buf, cfg.Suffix)
					if idx < 0 {
						break
					}

					frame := make([]byte, idx)
					copy(frame, buf[:idx])
					buf = append(buf[:0], buf[idx+len(cfg.Suffix):]...)

					if herr := cfg.Handler(frame); herr != nil {
						log.WithError(herr).Debug("frame handler returned an error, resuming at next read")
						break
					}
				}
			}

			if err != nil {
				return err
			}

			if n == 0 {
				return nil
			}
		}
	}
}

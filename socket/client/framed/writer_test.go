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
	"sync"

	libtls "github.com/nabbar/socketstream/certificates"
	libskt "github.com/nabbar/socketstream/socket"
	libtcp "github.com/nabbar/socketstream/socket/client/tcp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeTransport is a minimal libtcp.ClientTCP stand-in used only to exercise writerCell: it
// records every Write call and lets tests inject a write failure.
type fakeTransport struct {
	mu      sync.Mutex
	written [][]byte
	failErr error
}

func (f *fakeTransport) Read(p []byte) (int, error) { return 0, nil }

func (f *fakeTransport) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return 0, f.failErr
	}
	f.written = append(f.written, append([]byte(nil), p...))
	return len(p), nil
}

func (f *fakeTransport) Connect(ctx context.Context) error           { return nil }
func (f *fakeTransport) IsConnected() bool                           { return true }
func (f *fakeTransport) SetTLS(bool, libtls.TLSConfig, string) error { return nil }
func (f *fakeTransport) RegisterFuncError(fct libskt.FuncError)      {}
func (f *fakeTransport) RegisterFuncInfo(fct libskt.FuncInfo)        {}
func (f *fakeTransport) Close() error                                { return nil }

var _ libtcp.ClientTCP = (*fakeTransport)(nil)

var _ = Describe("writerCell", func() {
	It("reports ErrNotConnected before anything is installed", func() {
		w := &writerCell{}

		Expect(w.current()).To(BeNil())

		err := w.batch(func(cli libtcp.ClientTCP) error {
			return nil
		})
		Expect(err).To(MatchError(ErrNotConnected))
	})

	It("runs batch against the installed transport", func() {
		w := &writerCell{}
		tr := &fakeTransport{}
		w.set(tr)

		Expect(w.current()).To(Equal(libtcp.ClientTCP(tr)))

		err := w.batch(func(cli libtcp.ClientTCP) error {
			_, werr := cli.Write([]byte("hello"))
			return werr
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(tr.written).To(HaveLen(1))
		Expect(string(tr.written[0])).To(Equal("hello"))
	})

	It("replaces a previously installed transport", func() {
		w := &writerCell{}
		first := &fakeTransport{}
		second := &fakeTransport{}

		w.set(first)
		w.set(second)

		Expect(w.current()).To(Equal(libtcp.ClientTCP(second)))
	})

	It("propagates the write error from the batch function", func() {
		w := &writerCell{}
		tr := &fakeTransport{failErr: context.DeadlineExceeded}
		w.set(tr)

		werr := w.batch(func(cli libtcp.ClientTCP) error {
			_, err := cli.Write([]byte("x"))
			return err
		})
		Expect(werr).To(MatchError(context.DeadlineExceeded))
	})
})

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

package tcp_test

import (
	sckclt "github.com/nabbar/socketstream/socket/client/tcp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Creation", func() {
	Describe("New", func() {
		It("should create a client for a valid address", func() {
			cli, err := sckclt.New("127.0.0.1:8080")
			Expect(err).ToNot(HaveOccurred())
			Expect(cli).ToNot(BeNil())
		})

		It("should create a client for a host-only port", func() {
			cli, err := sckclt.New(":8082")
			Expect(err).ToNot(HaveOccurred())
			Expect(cli).ToNot(BeNil())
		})

		It("should create independent clients", func() {
			cli1, err1 := sckclt.New("127.0.0.1:8084")
			cli2, err2 := sckclt.New("127.0.0.1:8085")

			Expect(err1).ToNot(HaveOccurred())
			Expect(err2).ToNot(HaveOccurred())
			Expect(cli1).ToNot(Equal(cli2))
		})

		It("should reject an empty address", func() {
			cli, err := sckclt.New("")
			Expect(err).To(MatchError(sckclt.ErrAddress))
			Expect(cli).To(BeNil())
		})

		It("should reject a malformed address", func() {
			cli, err := sckclt.New("not-a-valid-address")
			Expect(err).To(HaveOccurred())
			Expect(cli).To(BeNil())
		})

		It("should reject a port-only address without a colon", func() {
			cli, err := sckclt.New("8080")
			Expect(err).To(HaveOccurred())
			Expect(cli).To(BeNil())
		})

		It("should reject an out-of-range port", func() {
			cli, err := sckclt.New("127.0.0.1:99999")
			Expect(err).To(HaveOccurred())
			Expect(cli).To(BeNil())
		})

		It("should accept IPv6 addresses", func() {
			cli, err := sckclt.New("[::1]:8086")
			Expect(err).ToNot(HaveOccurred())
			Expect(cli).ToNot(BeNil())
		})
	})

	Describe("Initial state", func() {
		It("should not be connected before Connect is called", func() {
			cli, err := sckclt.New(getTestAddress())
			Expect(err).ToNot(HaveOccurred())
			Expect(cli.IsConnected()).To(BeFalse())
		})
	})
})

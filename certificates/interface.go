/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

// Package certificates builds a *tls.Config from a declarative, concurrency-safe root-CA/
// certificate-pair accumulator.
//
// This is a trimmed sibling of the teacher's certificates package: client-certificate
// authentication modes, the cipher/curve catalogs, and the multi-format (JSON/YAML/TOML/CBOR)
// encoding of Config are dropped, since this module's spec carries no client-certificate support
// and no config-loading surface at all. What remains — root CA accumulation, a certificate pair
// for the server side, TLS version bounds, and RegisterRand — is exactly what a TLS client
// (and the loopback TLS server used in this module's tests) needs.
package certificates

import (
	"crypto/tls"
	"crypto/x509"
	"io"
)

// TLSConfig builds *tls.Config instances for a given server name from an accumulated set of
// root CAs, an optional certificate pair, and TLS version bounds.
//
// All methods are safe for concurrent use.
type TLSConfig interface {
	// RegisterRand overrides the source of randomness used by TLS handshakes. A nil reader
	// restores the crypto/rand default.
	RegisterRand(rand io.Reader)

	// AddRootCA parses a PEM-encoded certificate and adds it to the root CA pool used to verify
	// the remote peer. Returns false if the PEM block could not be parsed.
	AddRootCA(pemBlock []byte) bool
	// AddRootCAString is AddRootCA for a PEM string.
	AddRootCAString(pemBlock string) bool
	// AddRootCAFile reads a PEM file and adds its certificate(s) to the root CA pool.
	AddRootCAFile(path string) error
	// RootCAPool returns the accumulated root CA pool, or nil if none were added (in which case
	// TLS falls back to the system pool).
	RootCAPool() *x509.CertPool

	// SetCertificatePair installs the PEM-encoded key/certificate pair TLS presents to the peer.
	SetCertificatePair(keyPEM, certPEM []byte) error
	// AddCertificatePairString is SetCertificatePair for PEM strings.
	AddCertificatePairString(keyPEM, certPEM string) error

	// SetVersionMin sets the minimum accepted TLS version (a tls.VersionTLS1x constant). Zero
	// means "use crypto/tls's default".
	SetVersionMin(v uint16)
	// SetVersionMax sets the maximum accepted TLS version. Zero means "no explicit cap".
	SetVersionMax(v uint16)

	// TLS returns a *tls.Config ready to use as a client config against serverName, or as a
	// server config if serverName is empty.
	TLS(serverName string) *tls.Config
}

// New returns an empty TLSConfig: no root CAs, no certificate pair, default TLS version bounds.
func New() TLSConfig {
	return &model{}
}

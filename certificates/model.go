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

package certificates

import (
	"crypto/tls"
	"crypto/x509"
	"io"
	"os"
	"sync"
)

type model struct {
	mu sync.Mutex

	rand io.Reader
	pool *x509.CertPool
	cert *tls.Certificate

	vMin uint16
	vMax uint16
}

func (m *model) RegisterRand(rand io.Reader) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rand = rand
}

func (m *model) AddRootCA(pemBlock []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool == nil {
		m.pool = x509.NewCertPool()
	}

	return m.pool.AppendCertsFromPEM(pemBlock)
}

func (m *model) AddRootCAString(pemBlock string) bool {
	return m.AddRootCA([]byte(pemBlock))
}

func (m *model) AddRootCAFile(path string) error {
	p, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if !m.AddRootCA(p) {
		return ErrInvalidCertificate
	}

	return nil
}

func (m *model) RootCAPool() *x509.CertPool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool == nil {
		return nil
	}

	return m.pool.Clone()
}

func (m *model) SetCertificatePair(keyPEM, certPEM []byte) error {
	crt, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.cert = &crt
	return nil
}

func (m *model) AddCertificatePairString(keyPEM, certPEM string) error {
	return m.SetCertificatePair([]byte(keyPEM), []byte(certPEM))
}

func (m *model) SetVersionMin(v uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vMin = v
}

func (m *model) SetVersionMax(v uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vMax = v
}

func (m *model) TLS(serverName string) *tls.Config {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := &tls.Config{
		ServerName: serverName,
		RootCAs:    m.pool,
		MinVersion: m.vMin,
		MaxVersion: m.vMax,
		Rand:       m.rand,
	}

	if m.cert != nil {
		cfg.Certificates = []tls.Certificate{*m.cert}
	}

	return cfg
}

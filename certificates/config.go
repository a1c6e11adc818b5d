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

// Config is the declarative, serializable form of a TLSConfig: plain data a caller can build by
// hand or decode from JSON/YAML, then turn into a live TLSConfig with New.
type Config struct {
	RootCAFiles []string `json:"rootCaFiles,omitempty" yaml:"rootCaFiles,omitempty"`
	RootCAPem   []string `json:"rootCaPem,omitempty"   yaml:"rootCaPem,omitempty"`

	CertPEM string `json:"certPem,omitempty" yaml:"certPem,omitempty"`
	KeyPEM  string `json:"keyPem,omitempty"  yaml:"keyPem,omitempty"`

	VersionMin uint16 `json:"versionMin,omitempty" yaml:"versionMin,omitempty"`
	VersionMax uint16 `json:"versionMax,omitempty" yaml:"versionMax,omitempty"`
}

// New builds a live TLSConfig from the declarative Config. The first entry that fails to load
// or parse aborts construction: an unreadable root CA file returns its read error, an unparsable
// root CA PEM returns ErrInvalidCertificate, and a bad key/certificate pair returns its parse
// error.
func (c Config) New() (TLSConfig, error) {
	t := &model{
		vMin: c.VersionMin,
		vMax: c.VersionMax,
	}

	for _, f := range c.RootCAFiles {
		if err := t.AddRootCAFile(f); err != nil {
			return nil, err
		}
	}

	for _, p := range c.RootCAPem {
		if !t.AddRootCAString(p) {
			return nil, ErrInvalidCertificate
		}
	}

	if c.CertPEM != "" || c.KeyPEM != "" {
		if err := t.AddCertificatePairString(c.KeyPEM, c.CertPEM); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// IsZero reports whether the config carries no TLS material at all.
func (c Config) IsZero() bool {
	return len(c.RootCAFiles) == 0 && len(c.RootCAPem) == 0 && c.CertPEM == "" && c.KeyPEM == ""
}

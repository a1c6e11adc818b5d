/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package duration wraps time.Duration with text (en/de)coding so it can be used directly as a
// config struct field and still round-trip through JSON/YAML.
//
// This is a trimmed sibling of the teacher's duration package: day-notation parsing, the
// arbitrary-precision big sub-package, and the PID/range helpers are dropped since nothing in
// this module needs durations longer than a few minutes.
package duration

import (
	"errors"
	"time"
)

// ErrInvalid is returned by Parse when the input cannot be parsed as a time.Duration.
var ErrInvalid = errors.New("duration: invalid value")

// Duration is a time.Duration that marshals to/from its canonical text form (e.g. "30s", "1m30s").
type Duration time.Duration

// Parse parses s with time.ParseDuration and wraps the result as a Duration.
func Parse(s string) (Duration, error) {
	if s == "" {
		return 0, ErrInvalid
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Join(ErrInvalid, err)
	}

	return Duration(d), nil
}

// Time returns the value as a standard time.Duration.
func (d Duration) Time() time.Duration {
	return time.Duration(d)
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = v
	return nil
}

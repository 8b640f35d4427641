/*
Package ident creates identifiers for rendered elements, e.g. to link a
<label> to its <input>.

Identifiers are random strings of lowercase hexadecimal digits. The first
digit is always a letter (a–f), which makes identifiers valid as HTML ids
and CSS selectors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ident

import (
	"math/rand"
	"sync"
)

const (
	hexDigits  = "0123456789abcdef"
	hexLetters = "abcdef"
)

// DefaultLength is the length of identifiers created by Stable.
const DefaultLength = 8

// RandomHex returns a random string of length lowercase hexadecimal digits,
// the first of which is a letter. For length <= 0 it returns "".
//
// Identifiers are not suitable for security purposes.
func RandomHex(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	b[0] = hexLetters[rand.Intn(len(hexLetters))]
	for i := 1; i < length; i++ {
		b[i] = hexDigits[rand.Intn(len(hexDigits))]
	}
	return string(b)
}

// Stable holds an identifier which is created on first access and stays the
// same for the lifetime of the holder. Components embed a Stable to get an
// identifier that survives re-rendering. The zero value is ready to use and
// safe for concurrent use.
type Stable struct {
	once sync.Once
	id   string
}

// ID returns the identifier, creating it on first call.
func (s *Stable) ID() string {
	s.once.Do(func() {
		s.id = RandomHex(DefaultLength)
	})
	return s.id
}

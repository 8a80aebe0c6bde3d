// Package checksum provides the ISO 7064 MOD 97-10 arithmetic used by IBANs.
//
// Both functions are total: they never allocate a big integer and never
// panic, whatever the input.
package checksum

import "strings"

// Expand replaces every letter with its two-digit base-36 value (A=10 … Z=35)
// and leaves digits unchanged. Lowercase letters are folded to uppercase.
// Any other character is copied through untouched.
func Expand(code string) string {
	var b strings.Builder
	b.Grow(len(code) * 2)
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= 'A' && c <= 'Z':
			writeTwoDigits(&b, int(c-'A')+10)
		case c >= 'a' && c <= 'z':
			writeTwoDigits(&b, int(c-'a')+10)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Mod97 reduces a decimal digit string modulo 97, one digit at a time.
// Non-digit bytes are ignored.
func Mod97(digits string) int {
	acc := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			continue
		}
		acc = (acc*10 + int(c-'0')) % 97
	}
	return acc
}

func writeTwoDigits(b *strings.Builder, v int) {
	b.WriteByte(byte('0' + v/10))
	b.WriteByte(byte('0' + v%10))
}

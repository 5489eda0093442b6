// Package colorutil parses and normalizes hex color strings into packed
// 32-bit ARGB values. Accepted digit counts are 3 (RGB), 4 (ARGB),
// 6 (RRGGBB) and 8 (AARRGGBB), with an optional "#" or "0x" prefix.
package colorutil

import (
	"fmt"
	"log"
	"strings"
)

// FallbackARGB is returned by ParseARGB for any input it cannot parse.
// Opaque white is the canonical fallback; callers that need a hard failure
// should check IsValid first.
const FallbackARGB uint32 = 0xFFFFFFFF

// stripPrefix removes one recognized prefix ("#" or "0x") and reports
// whether a prefix was present.
func stripPrefix(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "#"):
		return s[1:], true
	case strings.HasPrefix(s, "0x"):
		return s[2:], true
	}
	return s, false
}

func hexNibble(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// parseHex interprets s as big-endian hex digits. Returns false on any
// non-hex character so that every malformed input takes the same path.
func parseHex(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < len(s); i++ {
		n, ok := hexNibble(s[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | n
	}
	return v, true
}

// ParseARGB converts a hex color string to a packed 0xAARRGGBB value.
// Short forms are expanded by nibble-doubling ("F" -> "FF"); a missing
// alpha channel defaults to fully opaque.
//
// Unparseable input yields FallbackARGB (opaque white). This is a
// deliberate lenient-fallback policy: rendering a wrong color beats
// rendering nothing, but it masks caller mistakes. Validate with IsValid
// where a bad color must be rejected.
func ParseARGB(color string) uint32 {
	hex, _ := stripPrefix(color)

	v, ok := parseHex(hex)
	if !ok {
		log.Printf("colorutil: invalid color %q, defaulting to opaque white", color)
		return FallbackARGB
	}

	switch len(hex) {
	case 3: // RGB -> FFRRGGBB
		r, g, b := v>>8&0xF, v>>4&0xF, v&0xF
		return 0xFF000000 | r*17<<16 | g*17<<8 | b*17
	case 4: // ARGB -> AARRGGBB
		a, r, g, b := v>>12&0xF, v>>8&0xF, v>>4&0xF, v&0xF
		return a*17<<24 | r*17<<16 | g*17<<8 | b*17
	case 6: // RRGGBB -> FFRRGGBB
		return 0xFF000000 | v
	case 8: // AARRGGBB
		return v
	}

	log.Printf("colorutil: invalid color %q, defaulting to opaque white", color)
	return FallbackARGB
}

// IsValid reports whether color is a well-formed hex color: a "#" or "0x"
// prefix is required, the remainder must be 3, 4, 6 or 8 hex digits.
func IsValid(color string) bool {
	hex, hadPrefix := stripPrefix(color)
	if !hadPrefix {
		return false
	}
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	_, ok := parseHex(hex)
	return ok
}

// ToDisplayRGB normalizes any accepted color to "#RRGGBB" for surfaces that
// reject an alpha channel in hex notation. The alpha byte of 8-digit input
// is dropped, not blended. Invalid input maps to "#FFFFFF", consistent with
// the ParseARGB fallback.
func ToDisplayRGB(color string) string {
	return fmt.Sprintf("#%06X", ParseARGB(color)&0x00FFFFFF)
}

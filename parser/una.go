package parser

import "github.com/edienergy/ediguide/raw"

// ResolveUNA implements the contract of §4.1: if input begins with the
// literal "UNA" followed by exactly six characters, those six characters are
// consumed and returned as the explicit service characters; otherwise
// nothing is consumed and raw.DefaultUNA is returned. The resolver never
// fails: the reserved position and the escape character may legally be any
// single rune, including whitespace, and no distinctness check is performed
// here. consumed is the number of runes of input that were recognized as the
// service-string advice (0 or 9).
func ResolveUNA(input []rune) (una raw.UNA, consumed int) {
	const prefix = "UNA"
	if len(input) < len(prefix)+6 {
		return raw.DefaultUNA, 0
	}
	for i, want := range prefix {
		if input[i] != want {
			return raw.DefaultUNA, 0
		}
	}
	chars := input[len(prefix) : len(prefix)+6]
	una = raw.UNA{
		ComponentSep: chars[0],
		ElementSep:   chars[1],
		DecimalMark:  chars[2],
		Escape:       chars[3],
		Reserved:     chars[4],
		SegmentSep:   chars[5],
	}
	return una, len(prefix) + 6
}

package gosms

import "unicode/utf8"

// SMS type tags understood by the gateway.
const (
	TypeText    = "text"
	TypeUnicode = "unicode"
)

const (
	textLimit    = 160
	unicodeLimit = 70
)

// Encoding describes how a message goes on the wire and how many
// characters fit in one SMS.
type Encoding struct {
	Type    string
	Limit   int
	Unicode bool
}

// Classify picks the encoding for a message: any rune outside 7-bit ASCII
// forces the unicode type with its smaller budget.
func Classify(message string) Encoding {
	for _, r := range message {
		if r > 127 {
			return Encoding{Type: TypeUnicode, Limit: unicodeLimit, Unicode: true}
		}
	}
	return Encoding{Type: TypeText, Limit: textLimit, Unicode: false}
}

// MessageLength counts characters the way the gateway bills them.
func MessageLength(message string) int {
	return utf8.RuneCountInString(message)
}

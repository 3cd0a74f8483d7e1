package models

import (
	"strconv"
	"strings"
)

// ParseHeight parses height display text such as `5'10"` into total inches.
// A trailing quote mark is optional. It reports false for anything it cannot
// parse; callers treat that as "no match", not as an error.
func ParseHeight(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, `"`)
	feetText, inchesText, found := strings.Cut(text, "'")
	if !found {
		return 0, false
	}
	feet, err := strconv.ParseInt(strings.TrimSpace(feetText), 10, 64)
	if err != nil {
		return 0, false
	}
	inches, err := strconv.ParseInt(strings.TrimSpace(inchesText), 10, 64)
	if err != nil {
		return 0, false
	}
	if feet < 0 || inches < 0 {
		return 0, false
	}
	return feet*12 + inches, true
}

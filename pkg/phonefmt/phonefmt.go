package phonefmt

import (
	"errors"
	"strings"
)

var ErrInvalidMobile = errors.New("invalid mobile number")

// Normalize converts a Pakistani mobile number to the international digit
// form the messaging gateway expects ("923XXXXXXXXX"). Accepted inputs are
// the local "03XX-XXXXXXX" form, the bare "3XXXXXXXXX" form and the
// international form with or without a leading plus. Separators and spaces
// are ignored.
func Normalize(number string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, number)

	cleaned = strings.TrimPrefix(cleaned, "+")
	if cleaned == "" || !digitsOnly(cleaned) {
		return "", ErrInvalidMobile
	}

	switch {
	case len(cleaned) == 11 && strings.HasPrefix(cleaned, "03"):
		cleaned = "92" + cleaned[1:]
	case len(cleaned) == 10 && strings.HasPrefix(cleaned, "3"):
		cleaned = "92" + cleaned
	}

	if len(cleaned) != 12 || !strings.HasPrefix(cleaned, "923") {
		return "", ErrInvalidMobile
	}
	return cleaned, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

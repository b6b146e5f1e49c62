package phone

import "strings"

// FormatUS приводит телефон к виду "(212) 555-0123"
// Нецифровые символы отбрасываются, неполные номера форматируются частично
func FormatUS(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()

	switch {
	case len(number) == 0:
		return ""
	case len(number) < 4:
		return number
	case len(number) < 7:
		return "(" + number[:3] + ") " + number[3:]
	default:
		if len(number) > 10 {
			number = number[:10]
		}
		if len(number) < 10 {
			return "(" + number[:3] + ") " + number[3:6] + "-" + number[6:]
		}
		return "(" + number[:3] + ") " + number[3:6] + "-" + number[6:10]
	}
}

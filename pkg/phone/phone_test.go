package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUS(t *testing.T) {
	cases := map[string]string{
		"2125550123":       "(212) 555-0123",
		"(212) 555-0123":   "(212) 555-0123",
		"212-555-0123":     "(212) 555-0123",
		"+1 212 555 0123":  "(121) 255-5012", // лишние цифры срезаются справа
		"212":              "212",
		"21255":            "(212) 55",
		"212555012":        "(212) 555-012",
		"":                 "",
		"call the office!": "",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, FormatUS(input), input)
	}
}

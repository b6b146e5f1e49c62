package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Smile Dental Care": "S",
		"John Smith":        "JS",
		"Dr. John Smith":    "JS",
		"Brooklyn Dental":   "BR",
		"dental care":       "DE",
		"X":                 "X",
		"":                  "",
	}

	for name, expected := range cases {
		assert.Equal(t, expected, Initials(name), name)
	}
}

func TestURL(t *testing.T) {
	url := URL("John Smith")
	assert.Contains(t, url, "ui-avatars.com")
	assert.Contains(t, url, "name=JS")
	assert.Contains(t, url, "format=svg")

	// Один и тот же вход дает один и тот же URL
	assert.Equal(t, url, URL("John Smith"))

	// Пустое имя получает инициалы по умолчанию
	assert.Contains(t, URL(""), "name=DC")
}

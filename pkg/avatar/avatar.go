package avatar

import (
	"fmt"
	"net/url"
	"strings"
)

// Слова, не несущие смысла для инициалов ("Smile Dental Care" -> "S", а не "SD")
var fillerWords = map[string]struct{}{
	"dental":  {},
	"dr":      {},
	"dr.":     {},
	"dentist": {},
	"care":    {},
	"center":  {},
	"clinic":  {},
	"office":  {},
	"-":       {},
	"|":       {},
}

// Однотонные фоны для аватаров
var backgroundColors = []string{
	"4f46e5", // indigo
	"7c3aed", // violet
	"0891b2", // cyan
	"059669", // emerald
	"dc2626", // red
	"ea580c", // orange
	"2563eb", // blue
	"db2777", // pink
}

// Initials извлекает до двух инициалов из имени врача или названия практики
func Initials(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	if len(words) == 0 {
		return ""
	}

	meaningful := make([]string, 0, len(words))
	for _, word := range words {
		if _, skip := fillerWords[strings.ToLower(word)]; !skip {
			meaningful = append(meaningful, word)
		}
	}

	switch len(meaningful) {
	case 0:
		// Все слова отфильтрованы - берем первые два символа первого слова
		return strings.ToUpper(truncate(words[0], 2))
	case 1:
		return strings.ToUpper(truncate(meaningful[0], 2))
	default:
		initials := string([]rune(meaningful[0])[0:1]) + string([]rune(meaningful[1])[0:1])
		return strings.ToUpper(initials)
	}
}

// URL генерирует URL аватара с инициалами на ui-avatars.com
// Цвет фона детерминированно выбирается по первому символу имени
func URL(name string) string {
	initials := Initials(name)
	if initials == "" {
		initials = "DC"
	}

	colorIndex := 0
	if name != "" {
		colorIndex = int(name[0]) % len(backgroundColors)
	}
	background := backgroundColors[colorIndex]

	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&length=2&size=256&font-size=0.5&bold=true&background=%s&color=ffffff&format=svg",
		url.QueryEscape(initials),
		background,
	)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

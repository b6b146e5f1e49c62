package seed

import (
	"strings"
)

// DentistRow строка исходного CSV со списком стоматологий
// Колонки: Name, Address, Category, Notes, Likely Area, Email, Phone
type DentistRow struct {
	Name       string
	Address    string
	Category   string
	Notes      string
	LikelyArea string
	Email      string
	Phone      string
}

// ParseCSV разбирает содержимое CSV файла со списком стоматологий.
// Формат файла простой: без экранированных запятых внутри полей,
// кавычки вокруг значений допускаются и срезаются. Строки короче
// семи колонок пропускаются
func ParseCSV(content string) []DentistRow {
	lines := strings.Split(content, "\n")

	rows := make([]DentistRow, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Первая строка - заголовок
		if i == 0 {
			continue
		}

		values := strings.Split(line, ",")
		if len(values) < 7 {
			continue
		}

		rows = append(rows, DentistRow{
			Name:       cleanValue(values[0]),
			Address:    cleanValue(values[1]),
			Category:   cleanValue(values[2]),
			Notes:      cleanValue(values[3]),
			LikelyArea: cleanValue(values[4]),
			Email:      cleanValue(values[5]),
			Phone:      cleanValue(values[6]),
		})
	}

	return rows
}

// cleanValue срезает пробелы и обрамляющие кавычки
func cleanValue(val string) string {
	val = strings.TrimSpace(val)
	val = strings.Trim(val, `"'`)
	return strings.TrimSpace(val)
}

package seed

import (
	"fmt"
	"math/rand"
	"strings"
)

// Специальности, выводимые из категории и названия практики
const (
	specialtyGeneral      = "General Dentistry"
	specialtyPediatric    = "Pediatric Dentistry"
	specialtyOrthodontics = "Orthodontics"
	specialtyOralSurgery  = "Oral Surgery"
	specialtyCosmetic     = "Cosmetic Dentistry"
	specialtyImplants     = "Dental Implants"
	specialtyEndodontics  = "Endodontics"
	specialtyPeriodontics = "Periodontics"
)

// InferSpecialty выводит специальность врача из категории и названия практики
func InferSpecialty(category, name string) string {
	lowerCategory := strings.ToLower(category)
	lowerName := strings.ToLower(name)

	switch {
	case strings.Contains(lowerCategory, "pediatric") || strings.Contains(lowerName, "pediatric"):
		return specialtyPediatric
	case strings.Contains(lowerCategory, "orthodontic") || strings.Contains(lowerName, "orthodontic"):
		return specialtyOrthodontics
	case strings.Contains(lowerCategory, "oral surgeon"):
		return specialtyOralSurgery
	case strings.Contains(lowerCategory, "cosmetic") || strings.Contains(lowerName, "cosmetic"):
		return specialtyCosmetic
	case strings.Contains(lowerCategory, "implant") || strings.Contains(lowerName, "implant"):
		return specialtyImplants
	case strings.Contains(lowerCategory, "endodontist"):
		return specialtyEndodontics
	case strings.Contains(lowerCategory, "periodontist"):
		return specialtyPeriodontics
	default:
		return specialtyGeneral
	}
}

// nonAreaWords значения, которые не являются названием района
var nonAreaWords = map[string]struct{}{
	"dentist":  {},
	"dental":   {},
	"office":   {},
	"practice": {},
}

// CleanArea выбирает название района из колонок Likely Area и Notes,
// отбрасывая мусорные значения. По умолчанию - "New York"
func CleanArea(notes, likelyArea string) string {
	for _, candidate := range []string{likelyArea, notes} {
		cleaned := cleanValue(candidate)
		if cleaned == "" {
			continue
		}
		if _, bad := nonAreaWords[strings.ToLower(cleaned)]; bad {
			continue
		}
		return cleaned
	}
	return "New York"
}

// bioTemplates шаблоны описания практики: %[1]s - название практики,
// %[2]s - специальность в нижнем регистре, %[3]s - район
var bioTemplates = []string{
	"%[1]s specializes in %[2]s, serving the %[3]s community with exceptional care and modern techniques.",
	"Dedicated to providing comprehensive %[2]s services in %[3]s. Patient comfort and satisfaction are our top priorities.",
	"Experienced dental professionals at %[1]s offering %[2]s in the heart of %[3]s.",
	"%[1]s brings years of expertise in %[2]s to %[3]s, combining advanced technology with compassionate care.",
	"Your trusted %[2]s practice in %[3]s, committed to helping you achieve and maintain optimal oral health.",
}

// GenerateBio генерирует описание практики из случайного шаблона
func GenerateBio(rng *rand.Rand, specialty, area, name string) string {
	template := bioTemplates[rng.Intn(len(bioTemplates))]
	return fmt.Sprintf(template, practiceName(name), strings.ToLower(specialty), area)
}

// practiceName извлекает название практики из полного имени,
// отбрасывая титулы вида "Dr." / "DDS" / "DMD"
func practiceName(name string) string {
	if !strings.Contains(name, "Dr.") && !strings.Contains(name, "DDS") && !strings.Contains(name, "DMD") {
		return name
	}
	for _, sep := range []string{",", "Dr.", "DDS", "DMD"} {
		if idx := strings.Index(name, sep); idx >= 0 {
			name = name[:idx]
		}
	}
	return strings.TrimSpace(name)
}

// CleanPhone возвращает телефон из CSV, если он уже отформатирован,
// иначе генерирует случайный в формате (XXX) XXX-XXXX
func CleanPhone(rng *rand.Rand, phone string) string {
	if strings.Contains(phone, "(") {
		return strings.TrimSpace(phone)
	}
	areaCode := rng.Intn(900) + 100
	prefix := rng.Intn(900) + 100
	lineNumber := rng.Intn(9000) + 1000
	return fmt.Sprintf("(%d) %d-%d", areaCode, prefix, lineNumber)
}

// FallbackEmail генерирует email из названия практики, когда в CSV его нет
func FallbackEmail(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String() + "@dentwise.app"
}

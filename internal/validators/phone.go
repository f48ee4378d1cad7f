package validators

import (
	"regexp"
	"strings"
)

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
	phonePattern    = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// NormalizePhone drops the separators people type between digit groups.
func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phone))
}

// IsPhone accepts 10 to 15 digits once separators are stripped.
func IsPhone(phone string) bool {
	return phonePattern.MatchString(NormalizePhone(phone))
}

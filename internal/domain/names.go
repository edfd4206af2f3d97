package domain

import (
	"strconv"
	"strings"
)

// NormalizeName — каноническая форма имени избранного: без пробелов по краям, в нижнем регистре.
// Числовой id остаётся своей строковой формой ("25").
func NormalizeName(nameOrID string) string {
	return strings.ToLower(strings.TrimSpace(nameOrID))
}

// NormalizeID — то же для числового идентификатора.
func NormalizeID(id int) string {
	return strconv.Itoa(id)
}

// IsNumericID — true, если строка является положительным числовым id.
func IsNumericID(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

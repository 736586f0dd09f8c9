package service

import (
	"strings"
	"unicode"

	"go-multidb-api/internal/model"
)

const specialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>/?~` + "`"

const (
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthHigh   = "high"
)

type strengthCriterion struct {
	name      string
	satisfied func(string) bool
}

// Criteria are evaluated in this order and the missing list preserves it:
// uppercase, lowercase, number, special character, minimum length.
var strengthCriteria = []strengthCriterion{
	{"uppercase letter", func(s string) bool { return strings.ContainsFunc(s, unicode.IsUpper) }},
	{"lowercase letter", func(s string) bool { return strings.ContainsFunc(s, unicode.IsLower) }},
	{"number", func(s string) bool { return strings.ContainsFunc(s, unicode.IsDigit) }},
	{"special character", func(s string) bool { return strings.ContainsAny(s, specialCharacters) }},
	{"minimum 8 characters", func(s string) bool { return len(s) >= 8 }},
}

// EvaluatePassword scores a plaintext password against five composition
// criteria. Score is the count of satisfied criteria; level is high at 5,
// medium at 3 or 4, weak below that.
func EvaluatePassword(plaintext string) model.PasswordStrength {
	score := 0
	missing := make([]string, 0, len(strengthCriteria))

	for _, criterion := range strengthCriteria {
		if criterion.satisfied(plaintext) {
			score++
			continue
		}
		missing = append(missing, criterion.name)
	}

	level := StrengthWeak
	switch {
	case score >= 5:
		level = StrengthHigh
	case score >= 3:
		level = StrengthMedium
	}

	return model.PasswordStrength{Level: level, Score: score, Missing: missing}
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		level   string
		score   int
		missing []string
	}{
		{
			name:  "all criteria satisfied",
			input: "Abcdef1!",
			level: StrengthHigh,
			score: 5,
		},
		{
			name:    "lowercase only",
			input:   "abc",
			level:   StrengthWeak,
			score:   1,
			missing: []string{"uppercase letter", "number", "special character", "minimum 8 characters"},
		},
		{
			name:    "empty password misses everything",
			input:   "",
			level:   StrengthWeak,
			score:   0,
			missing: []string{"uppercase letter", "lowercase letter", "number", "special character", "minimum 8 characters"},
		},
		{
			name:    "three criteria is medium",
			input:   "Abcdef1",
			level:   StrengthMedium,
			score:   3,
			missing: []string{"special character", "minimum 8 characters"},
		},
		{
			name:    "four criteria is still medium",
			input:   "Abcdefg1h",
			level:   StrengthMedium,
			score:   4,
			missing: []string{"special character"},
		},
		{
			name:    "digits only",
			input:   "12345678",
			level:   StrengthWeak,
			score:   2,
			missing: []string{"uppercase letter", "lowercase letter", "special character"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluatePassword(tt.input)

			assert.Equal(t, tt.level, result.Level)
			assert.Equal(t, tt.score, result.Score)
			if tt.missing == nil {
				assert.Empty(t, result.Missing)
			} else {
				assert.Equal(t, tt.missing, result.Missing)
			}
		})
	}
}

func TestEvaluatePasswordMissingPreservesOrder(t *testing.T) {
	// Fixed order: uppercase, lowercase, number, special, length.
	result := EvaluatePassword("zzzzzzzzzz")
	assert.Equal(t, []string{"uppercase letter", "number", "special character"}, result.Missing)
}

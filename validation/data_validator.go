// Package validation provides input validation for the obstetric API.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/matergo/obstetric-api/interfaces"
	"github.com/matergo/obstetric-api/medications/entities"
)

// Pre-compiled regex patterns for performance optimization
// Compiled once at package initialization and reused for all validations
var (
	// Input validation: alphanumeric + Spanish accents + safe punctuation
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'áéíóúüñÁÉÍÓÚÜÑ]+$`)

	// Dangerous patterns as strings (faster than regex for simple substring matching)
	// strings.Contains is 5-10x faster than regex for these patterns
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
		"eval(", "expression(", "url(", "import ", "@import", "binding(", "behavior(",
		// SQL injection patterns
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"update set", "--", "/*", "*/", "xp_", "sp_", "exec(", "execute(",
		// Command injection patterns
		"; ", "| ", "& ", "`", "$(", "${",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
		// LDAP injection patterns
		"*)(", "*|(", "*)%",
		// NoSQL injection patterns
		"{$ne:", "{$gt:", "{$where:", "{$or:", "{$regex:", "{$expr:",
	}
)

const (
	minTermLength = 2
	maxTermLength = 100
	maxTermWords  = 6
	maxListSize   = 20
)

// InputValidatorImpl implements the interfaces.InputValidator interface
type InputValidatorImpl struct{}

// Compile-time interface check
var _ interfaces.InputValidator = (*InputValidatorImpl)(nil)

// NewInputValidator creates a new input validator
func NewInputValidator() interfaces.InputValidator {
	return &InputValidatorImpl{}
}

// ValidateSearchTerm validates a free-text drug name with enhanced security
func (v *InputValidatorImpl) ValidateSearchTerm(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(strings.TrimSpace(input)) < minTermLength {
		return fmt.Errorf("input too short: minimum %d characters", minTermLength)
	}

	if len(input) > maxTermLength {
		return fmt.Errorf("input too long: maximum %d characters", maxTermLength)
	}

	// Word count validation to prevent DoS attacks with many short words
	words := strings.Fields(input)
	if len(words) > maxTermWords {
		return fmt.Errorf("search query too complex: maximum %d words allowed", maxTermWords)
	}

	// Check for potentially dangerous patterns using string matching (5-10x faster than regex)
	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	// Allow only alphanumeric characters, spaces, and safe punctuation
	if !inputRegex.MatchString(input) {
		return fmt.Errorf("input contains invalid characters. Only letters, numbers, spaces, hyphens, apostrophes, periods, plus sign, and Spanish accented characters are allowed")
	}

	// Additional checks for repeated characters (potential DoS)
	if hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// ValidateMedicationList validates an interaction-analysis input list.
// The two-medication minimum is not enforced here: a short list is a valid
// analyzer input that yields an informational response.
func (v *InputValidatorImpl) ValidateMedicationList(medications []string) error {
	if len(medications) == 0 {
		return fmt.Errorf("medication list cannot be empty")
	}

	if len(medications) > maxListSize {
		return fmt.Errorf("medication list too long: maximum %d entries", maxListSize)
	}

	for i, med := range medications {
		if err := v.ValidateSearchTerm(med); err != nil {
			return fmt.Errorf("medication %d: %w", i+1, err)
		}
	}

	return nil
}

// ValidateCategory parses a pregnancy category path parameter. Only the
// five plain letters are accepted; composites and free text are rejected.
func (v *InputValidatorImpl) ValidateCategory(input string) (entities.Category, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(input))
	switch entities.Category(trimmed) {
	case entities.CategoryA, entities.CategoryB, entities.CategoryC,
		entities.CategoryD, entities.CategoryX:
		return entities.Category(trimmed), nil
	}
	return "", fmt.Errorf("invalid pregnancy category: must be one of A, B, C, D, X")
}

// hasExcessiveRepetition checks for potential DoS patterns with excessive character repetition
func hasExcessiveRepetition(input string) bool {
	// Check for the same character repeated more than 10 times consecutively
	for i := 0; i < len(input)-10; i++ {
		allSame := true
		for j := 1; j <= 10; j++ {
			if input[i] != input[i+j] {
				allSame = false
				break
			}
		}
		if allSame {
			return true
		}
	}
	return false
}

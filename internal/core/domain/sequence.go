package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
)

// Reserved sequence prefixes. Item codes use a prefix derived from the item category.
const (
	SequenceAdjustment = "ADJ"
	SequenceCount      = "PC"
	SequenceProperty   = "PROP"
)

var (
	prefixPattern         = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,9}$`)
	propertyNumberPattern = regexp.MustCompile(`^PROP-\d{4}-\d{4,}$`)
)

// SequenceScope identifies one durable counter.
type SequenceScope struct {
	Category string
	Year     int
}

// NewSequenceScope normalises the category and validates the scope.
func NewSequenceScope(category string, year int) (SequenceScope, error) {
	category = strings.ToUpper(strings.TrimSpace(category))
	if !prefixPattern.MatchString(category) {
		return SequenceScope{}, fmt.Errorf("%w: invalid sequence category %q", apperrors.ErrValidation, category)
	}
	if year < 1000 || year > 9999 {
		return SequenceScope{}, fmt.Errorf("%w: invalid sequence year %d", apperrors.ErrValidation, year)
	}
	return SequenceScope{Category: category, Year: year}, nil
}

// Width is the zero-padding of the numeric tail.
func (s SequenceScope) Width() int {
	if s.Category == SequenceProperty {
		return 4
	}
	return 3
}

func (s SequenceScope) String() string {
	return fmt.Sprintf("%s-%d", s.Category, s.Year)
}

// Format renders the code for value n in this scope.
func (s SequenceScope) Format(n int64) string {
	return fmt.Sprintf("%s-%d-%0*d", s.Category, s.Year, s.Width(), n)
}

// Parse extracts the numeric tail of a code that belongs to this scope.
func (s SequenceScope) Parse(code string) (int64, error) {
	prefix := fmt.Sprintf("%s-%d-", s.Category, s.Year)
	if !strings.HasPrefix(code, prefix) {
		return 0, fmt.Errorf("%w: code %q does not belong to scope %s", apperrors.ErrSequenceCorrupted, code, s)
	}
	tail := strings.TrimPrefix(code, prefix)
	if len(tail) < s.Width() {
		return 0, fmt.Errorf("%w: code %q has a short numeric tail", apperrors.ErrSequenceCorrupted, code)
	}
	n, err := strconv.ParseInt(tail, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: code %q has an unparsable numeric tail", apperrors.ErrSequenceCorrupted, code)
	}
	return n, nil
}

// Next returns the code following lastCode. An empty lastCode starts the scope at 1.
func (s SequenceScope) Next(lastCode string) (string, int64, error) {
	if lastCode == "" {
		return s.Format(1), 1, nil
	}
	n, err := s.Parse(lastCode)
	if err != nil {
		return "", 0, err
	}
	return s.Format(n + 1), n + 1, nil
}

// ParseSequenceCode splits a full code such as PROP-2025-0007 into its scope
// and numeric value.
func ParseSequenceCode(code string) (SequenceScope, int64, error) {
	parts := strings.Split(code, "-")
	if len(parts) != 3 {
		return SequenceScope{}, 0, fmt.Errorf("%w: %q is not a {PREFIX}-{YYYY}-{NNN} code", apperrors.ErrValidation, code)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return SequenceScope{}, 0, fmt.Errorf("%w: %q has no year", apperrors.ErrValidation, code)
	}
	scope, err := NewSequenceScope(parts[0], year)
	if err != nil {
		return SequenceScope{}, 0, err
	}
	n, err := scope.Parse(code)
	if err != nil {
		return SequenceScope{}, 0, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return scope, n, nil
}

// ValidatePropertyNumber checks the fixed property number format.
func ValidatePropertyNumber(pn string) error {
	if !propertyNumberPattern.MatchString(pn) {
		return fmt.Errorf("%w: property number %q must match PROP-YYYY-NNNN", apperrors.ErrValidation, pn)
	}
	return nil
}

// IsPropertyNumber reports whether pn has the fixed property number format.
func IsPropertyNumber(pn string) bool {
	return propertyNumberPattern.MatchString(pn)
}

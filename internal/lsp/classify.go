package lsp

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrOverlappingSets is returned when a rule code appears in both
// classification sets.
var ErrOverlappingSets = errors.New("classification sets overlap")

// Classifier maps rule codes onto categories using two disjoint membership
// sets. The sets come from configuration; adding a category member never
// changes control flow here.
type Classifier struct {
	errorCodes  map[string]struct{}
	unusedCodes map[string]struct{}
}

// NewClassifier builds a Classifier from the two code sets, rejecting any
// overlap between them.
func NewClassifier(errorCodes, unusedCodes []string) (*Classifier, error) {
	c := &Classifier{
		errorCodes:  make(map[string]struct{}, len(errorCodes)),
		unusedCodes: make(map[string]struct{}, len(unusedCodes)),
	}

	for _, code := range errorCodes {
		c.errorCodes[code] = struct{}{}
	}

	var overlap []string

	for _, code := range unusedCodes {
		if _, ok := c.errorCodes[code]; ok {
			overlap = append(overlap, code)
			continue
		}

		c.unusedCodes[code] = struct{}{}
	}

	if len(overlap) > 0 {
		sort.Strings(overlap)
		return nil, errors.Wrapf(ErrOverlappingSets, "codes %v", overlap)
	}

	return c, nil
}

// Classify returns the category for a rule code. Codes in neither set are
// warnings.
func (c *Classifier) Classify(code string) Category {
	if _, ok := c.errorCodes[code]; ok {
		return CategoryError
	}

	if _, ok := c.unusedCodes[code]; ok {
		return CategoryUnusedCode
	}

	return CategoryWarning
}

package ruff

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrMalformedOutput is returned when check-mode stdout is not a valid JSON
// array of diagnostics.
var ErrMalformedOutput = errors.New("linter output is not valid JSON")

// ParseDiagnostics decodes check-mode stdout. An empty output parses as no
// diagnostics; anything that is not a JSON array fails with
// ErrMalformedOutput.
func ParseDiagnostics(output string) ([]RawDiagnostic, error) {
	if output == "" {
		return []RawDiagnostic{}, nil
	}

	var diags []RawDiagnostic
	if err := json.Unmarshal([]byte(output), &diags); err != nil {
		return nil, errors.Wrapf(ErrMalformedOutput, "decoding diagnostics: %v", err)
	}

	if diags == nil {
		diags = []RawDiagnostic{}
	}

	return diags, nil
}

// Package lsp translates ruff findings into LSP diagnostics and code actions.
package lsp

//go:generate enumer -type=Category -trimprefix=Category -transform=lower -json -text

// Category is the severity classification of a rule code.
type Category int

const (
	// CategoryWarning is the default category for codes in neither
	// classification set.
	CategoryWarning Category = iota

	// CategoryError covers codes that block, such as syntax errors.
	CategoryError

	// CategoryUnusedCode covers codes flagging dead or unused code; the
	// editor renders these faded rather than underlined.
	CategoryUnusedCode
)

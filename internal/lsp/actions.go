package lsp

import (
	"regexp"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// organizeImportsPattern matches import-sort rule codes: one uppercase "I"
// followed by three digits.
var organizeImportsPattern = regexp.MustCompile(`^I\d{3}$`)

// Aggregator turns built diagnostics into protocol code actions.
type Aggregator struct{}

// Aggregate emits one code action per diagnostic carrying an action from
// this tool. Diagnostics without one are skipped. Output order equals input
// order; there is no deduplication and no secondary sort.
func (Aggregator) Aggregate(uri protocol.DocumentUri, diags []Diagnostic) []protocol.CodeAction {
	actions := make([]protocol.CodeAction, 0, len(diags))

	for _, d := range diags {
		act := d.Action
		if act == nil || act.Source != Source {
			continue
		}

		edits := make([]protocol.TextEdit, 0, len(act.Fix.Edits))
		for _, e := range act.Fix.Edits {
			edits = append(edits, protocol.TextEdit{
				Range:   rangeOf(e.Location, e.EndLocation),
				NewText: e.Content,
			})
		}

		kind := protocol.CodeActionKindQuickFix
		if organizeImportsPattern.MatchString(act.Code) {
			kind = protocol.CodeActionKindSourceOrganizeImports
		}

		actions = append(actions, protocol.CodeAction{
			Title: act.Title,
			Kind:  &kind,
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					uri: edits,
				},
			},
		})
	}

	return actions
}

package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/lintkit/rufflink/internal/ruff"
)

// position converts a one-indexed ruff location into a zero-indexed protocol
// position, floor-clamped at zero. Well-formed tool output never carries a
// row or column below 1, but underflow must never propagate as negative.
func position(loc ruff.Location) protocol.Position {
	return protocol.Position{
		Line:      clampIndex(loc.Row),
		Character: clampIndex(loc.Column),
	}
}

// rangeOf converts a start/end location pair independently. End-before-start
// input passes through unchanged; ordering is the tool's responsibility.
func rangeOf(start, end ruff.Location) protocol.Range {
	return protocol.Range{
		Start: position(start),
		End:   position(end),
	}
}

func clampIndex(oneIndexed int) protocol.UInteger {
	if oneIndexed <= 1 {
		return 0
	}

	return protocol.UInteger(oneIndexed - 1)
}

// fullDocumentRange spans the entire buffer: from the document start to the
// start of the line past the last one. Computing the end from the buffer
// keeps protocol numeric sentinels out of the edit.
func fullDocumentRange(buffer string) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End: protocol.Position{
			Line:      protocol.UInteger(strings.Count(buffer, "\n") + 1),
			Character: 0,
		},
	}
}

package ui

import (
	"fmt"
	"strings"

	"github.com/evm-tools/calldecode/internal/decoder"
)

// RenderCall renders a decoded call tree: one header line per call, one line
// per parameter, inner calls indented one level deeper.
func RenderCall(call *decoder.Call) string {
	var sb strings.Builder
	renderCallAt(&sb, call, 0)
	return StyleBorder.Render(strings.TrimRight(sb.String(), "\n"))
}

func renderCallAt(sb *strings.Builder, call *decoder.Call, depth int) {
	indent := strings.Repeat("  ", depth)

	sb.WriteString(indent + FuncName(call.ABI+"::"+call.Function) + " " + Meta(call.Signature) + "\n")
	for _, p := range call.Params {
		name := p.Name
		if name == "" {
			name = "_"
		}
		sb.WriteString(fmt.Sprintf("%s  %s %s\n",
			indent,
			Meta(fmt.Sprintf("%-16s", name+" ("+p.Type+"):")),
			Val(p.Value),
		))
	}

	if call.InnerTo != "" {
		sb.WriteString(indent + "  " + Meta("forwards to:") + " " + Addr(call.InnerTo) + "\n")
	}
	if call.InnerValue != "" {
		sb.WriteString(indent + "  " + Meta("forwards value:") + " " + Val(call.InnerValue) + "\n")
	}
	if call.Inner != nil {
		sb.WriteString(indent + "  " + Meta("inner call:") + "\n")
		renderCallAt(sb, call.Inner, depth+2)
	}
}

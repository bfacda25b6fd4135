package generate

import (
	"fmt"
	"strings"

	"vapor-go/packages/compiler/src/ir"
)

// childEntry is one key of the sparse children index
type childEntry struct {
	Index    int
	ID       string
	Children []childEntry
}

// collectChildren walks one sibling level of the dynamic tree. A
// non-template sibling keeps its own position but consumes no template
// slot, so every later sibling shifts left by one.
func collectChildren(children []*ir.IRDynamicInfo) []childEntry {
	var entries []childEntry
	offset := 0

	for index, child := range children {
		idx := index + offset
		if child.DynamicFlags.Has(ir.DynamicNonTemplate) {
			offset--
		}

		id := ""
		if child.DynamicFlags.Has(ir.DynamicReferenced) {
			if child.DynamicFlags.Has(ir.DynamicInsert) {
				id = fmt.Sprintf("n%d", child.Anchor)
			} else {
				id = fmt.Sprintf("n%d", child.ID)
			}
		}
		nested := collectChildren(child.Children)

		if id != "" || len(nested) > 0 {
			entries = append(entries, childEntry{Index: idx, ID: id, Children: nested})
		}
	}
	return entries
}

// formatChildren renders entries as a destructuring pattern over the value
// returned by the runtime children helper, e.g. `{ 0: [n1], 2: [, { 0: [n3],}],}`.
// No entries yields "".
func formatChildren(entries []childEntry) string {
	if len(entries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("{")
	for _, entry := range entries {
		fmt.Fprintf(&sb, " %d: [", entry.Index)
		sb.WriteString(entry.ID)
		if nested := formatChildren(entry.Children); nested != "" {
			sb.WriteString(", ")
			sb.WriteString(nested)
		}
		sb.WriteString("],")
	}
	sb.WriteString("}")
	return sb.String()
}

func genChildren(children []*ir.IRDynamicInfo) string {
	return formatChildren(collectChildren(children))
}

package models

import "strings"

// SelectionSeparator joins multi-select options on the wire.
const SelectionSeparator = ", "

// SplitSelections parses a comma-joined multi-select value into its option
// labels, trimming whitespace and dropping empty entries. Order of selection
// is preserved; the composers re-order sections canonically themselves.
func SplitSelections(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SelectionSet returns the selections as a membership set.
func SelectionSet(selections []string) map[string]bool {
	set := make(map[string]bool, len(selections))
	for _, s := range selections {
		set[s] = true
	}
	return set
}

package controls

import "github.com/gymbuddy/gymbuddy/pkg/ui"

// ConfigureChipGroup wires the single-select behavior of the named chip
// container: clicking any chip clears the active marker from all chips
// in the group and sets it on the clicked one. If defaultValue matches
// a chip's value, that chip is pre-activated. A missing container is a
// silent no-op.
func ConfigureChipGroup(doc *ui.Document, groupID, defaultValue string) {
	group := doc.ByID(groupID)
	if group == nil {
		return
	}

	for _, chip := range group.Children() {
		if !chip.HasClass(ui.ClassChip) {
			continue
		}
		chip := chip
		chip.On(ui.EventClick, func(*ui.Event) {
			activate(group, chip)
		})
		if v, ok := chip.Attr(ui.AttrValue); ok && defaultValue != "" && v == defaultValue {
			activate(group, chip)
		}
	}
}

// ActiveValue returns the value of the group's active chip. The second
// return is false when the container is missing or no chip is active.
func ActiveValue(doc *ui.Document, groupID string) (string, bool) {
	group := doc.ByID(groupID)
	if group == nil {
		return "", false
	}
	for _, chip := range group.Children() {
		if chip.HasClass(ui.ClassChip) && chip.HasClass(ui.ClassActive) {
			v, _ := chip.Attr(ui.AttrValue)
			return v, true
		}
	}
	return "", false
}

// activate marks one chip active and deactivates its siblings.
func activate(group, selected *ui.Element) {
	for _, sibling := range group.Children() {
		sibling.RemoveClass(ui.ClassActive)
	}
	selected.AddClass(ui.ClassActive)
}

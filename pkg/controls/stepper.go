package controls

import (
	"strconv"

	"github.com/gymbuddy/gymbuddy/pkg/ui"
)

// Fallback bounds used when an input's numeric attributes are unset or
// malformed. Parsing never fails; it degrades to these values.
const (
	defaultMin  = -9999
	defaultMax  = 9999
	defaultStep = 1
)

// WireSteppers registers a click handler on every element that carries
// a step-target attribute. On click the handler reads the bound input's
// value, min, max and step, applies the button's signed multiplier and
// writes the clamped result back as the input's value.
func WireSteppers(doc *ui.Document) {
	doc.Walk(func(el *ui.Element) {
		targetID, ok := el.Attr(ui.AttrStepTarget)
		if !ok {
			return
		}
		// Missing or malformed multiplier degrades to 0: the click
		// still clamps the current value into range.
		multiplier := parseInt(attrOf(el, ui.AttrStepSize), 0)

		el.On(ui.EventClick, func(*ui.Event) {
			input := doc.ByID(targetID)
			if input == nil {
				return
			}
			current := parseInt(input.Value(), 0)
			min := parseInt(attrOf(input, ui.AttrMin), defaultMin)
			max := parseInt(attrOf(input, ui.AttrMax), defaultMax)
			step := parseInt(attrOf(input, ui.AttrStep), defaultStep)

			next := clamp(current+multiplier*step, min, max)
			input.SetValue(strconv.Itoa(next))
		})
	})
}

func attrOf(el *ui.Element, key string) string {
	v, _ := el.Attr(key)
	return v
}

// parseInt parses a base-10 integer, falling back on any error.
func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package ui

import "strconv"

// Attribute and class names shared between the page and the controls
// that operate on it.
const (
	ClassChip   = "chip"
	ClassActive = "active"

	AttrValue      = "value"
	AttrMin        = "min"
	AttrMax        = "max"
	AttrStep       = "step"
	AttrStepTarget = "data-target"
	AttrStepSize   = "data-step"
)

// chipGroupSpec describes one single-select option group of the page.
type chipGroupSpec struct {
	id     string
	values []string
}

var coachChipGroups = []chipGroupSpec{
	{id: "gender", values: []string{"male", "female", "other"}},
	{id: "main_goal", values: []string{"hypertrophy", "strength", "fat_loss", "endurance"}},
	{id: "experience", values: []string{"beginner", "intermediate", "advanced"}},
	{id: "days_per_week", values: []string{"2", "3", "4", "5", "6"}},
	{id: "minutes_per_workout", values: []string{"30", "45", "60", "90"}},
	{id: "injuries_yes_no", values: []string{"yes", "no"}},
}

// numericSpec describes one stepper-bound numeric input. The bounds
// mirror the coach service's accepted ranges.
type numericSpec struct {
	id            string
	min, max, def int
}

var coachNumericInputs = []numericSpec{
	{id: "weight", min: 30, max: 300, def: 70},
	{id: "height", min: 120, max: 230, def: 175},
	{id: "age", min: 10, max: 100, def: 25},
}

// NewCoachPage builds the default GymBuddy page: an onboarding section
// with the six chip groups, three stepper-bound numeric inputs and the
// injuries free-text field, and a hidden chat section with the message
// transcript, input and send button.
func NewCoachPage() *Document {
	doc := NewDocument()

	onboarding := doc.CreateElement("onboarding")
	doc.Root().AppendChild(onboarding)

	for _, g := range coachChipGroups {
		group := doc.CreateElement(g.id)
		for _, v := range g.values {
			chip := doc.CreateElement("")
			chip.AddClass(ClassChip)
			chip.SetAttr(AttrValue, v)
			group.AppendChild(chip)
		}
		onboarding.AppendChild(group)
	}

	for _, n := range coachNumericInputs {
		input := doc.CreateElement(n.id)
		input.SetAttr(AttrMin, strconv.Itoa(n.min))
		input.SetAttr(AttrMax, strconv.Itoa(n.max))
		input.SetAttr(AttrStep, "1")
		input.SetValue(strconv.Itoa(n.def))
		onboarding.AppendChild(input)

		onboarding.AppendChild(stepButton(doc, n.id, -1))
		onboarding.AppendChild(stepButton(doc, n.id, +1))
	}

	details := doc.CreateElement("injuries_details")
	onboarding.AppendChild(details)

	startBtn := doc.CreateElement("startBtn")
	onboarding.AppendChild(startBtn)

	chat := doc.CreateElement("chat")
	chat.SetHidden(true)
	doc.Root().AppendChild(chat)

	messages := doc.CreateElement("messages")
	chat.AppendChild(messages)

	chatInput := doc.CreateElement("chatInput")
	chat.AppendChild(chatInput)

	sendBtn := doc.CreateElement("sendBtn")
	chat.AppendChild(sendBtn)

	return doc
}

func stepButton(doc *Document, target string, size int) *Element {
	btn := doc.CreateElement(target + stepSuffix(size))
	btn.SetAttr(AttrStepTarget, target)
	btn.SetAttr(AttrStepSize, strconv.Itoa(size))
	return btn
}

func stepSuffix(size int) string {
	if size < 0 {
		return "_dec"
	}
	return "_inc"
}

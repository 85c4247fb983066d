package controller

import "github.com/gymbuddy/gymbuddy/pkg/ui"

// Bindings holds the interface elements the controller depends on,
// resolved once from the document. Any element may be nil; the
// controller degrades to a no-op for the parts that are missing.
type Bindings struct {
	Onboarding *ui.Element
	Chat       *ui.Element
	Messages   *ui.Element

	StartBtn  *ui.Element
	SendBtn   *ui.Element
	ChatInput *ui.Element

	Weight          *ui.Element
	Height          *ui.Element
	Age             *ui.Element
	InjuriesDetails *ui.Element
}

// ResolveBindings looks up the required element ids in the document.
func ResolveBindings(doc *ui.Document) Bindings {
	return Bindings{
		Onboarding:      doc.ByID("onboarding"),
		Chat:            doc.ByID("chat"),
		Messages:        doc.ByID("messages"),
		StartBtn:        doc.ByID("startBtn"),
		SendBtn:         doc.ByID("sendBtn"),
		ChatInput:       doc.ByID("chatInput"),
		Weight:          doc.ByID("weight"),
		Height:          doc.ByID("height"),
		Age:             doc.ByID("age"),
		InjuriesDetails: doc.ByID("injuries_details"),
	}
}

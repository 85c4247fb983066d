package domain

// Session is the durable snapshot of one conversation: the profile
// summary the server reported and the transcript so far. The in-page
// transcript stays ephemeral; persistence is an optional adapter
// mirroring it.
type Session struct {
	Summary  string    `json:"summary"`
	Messages []Message `json:"messages"`
}

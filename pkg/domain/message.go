package domain

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Label returns the short label shown next to a message in the
// transcript. The assistant shows as "GB"; everything else is "You".
func (r Role) Label() string {
	if r == RoleAssistant {
		return "GB"
	}
	return "You"
}

// Message is one chat turn. Messages are appended to the transcript in
// order and never mutated or removed.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

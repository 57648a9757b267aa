package domain

// SessionState is the serializable snapshot of one execution session.
// It is what session stores persist and what the HTTP adapter returns.
//
// Left holds the cells at negative addresses, stored reversed (index 0 is
// address -1), mirroring the in-memory tape layout.
type SessionState struct {
	ID           string `json:"id,omitempty"`
	CurrentState string `json:"current_state"`
	HeadIndex    int    `json:"head_index"`
	Left         string `json:"left"`
	Right        string `json:"right"`
	Steps        int    `json:"steps"`
	Status       Status `json:"status"`
}

// Tape renders the full tape snapshot, reverse(left) + right.
func (s *SessionState) Tape() string {
	left := []rune(s.Left)
	out := make([]rune, 0, len(s.Left)+len(s.Right))
	for i := len(left) - 1; i >= 0; i-- {
		out = append(out, left[i])
	}
	return string(out) + s.Right
}

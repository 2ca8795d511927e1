package lobby

import "time"

// Lobby is a scheduled pick-up sports event. JoinedPlayers is derived from
// the participants table and never stored; Participants is only populated
// on single-lobby fetches, ordered by join time.
type Lobby struct {
	ID              string        `json:"id"`
	SportName       string        `json:"sportName"`
	Location        string        `json:"location"`
	Latitude        *float64      `json:"latitude,omitempty"`
	Longitude       *float64      `json:"longitude,omitempty"`
	ScheduledAt     time.Time     `json:"scheduledAt"`
	MaxPlayers      int           `json:"maxPlayers"`
	JoinedPlayers   int           `json:"joinedPlayers"`
	Description     string        `json:"description"`
	ImageURL        string        `json:"imageUrl"`
	CreatorNickname string        `json:"creatorNickname"`
	CreatorEmail    string        `json:"creatorEmail"`
	CreatedAt       time.Time     `json:"createdAt"`
	Participants    []Participant `json:"participants,omitempty"`
}

// Participant is a user who joined a lobby. The creator is always the
// first participant.
type Participant struct {
	UserID   string    `json:"userId"`
	Nickname string    `json:"nickname"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Member identifies the user performing a join or leave.
type Member struct {
	UserID   string
	Nickname string
	Email    string
}

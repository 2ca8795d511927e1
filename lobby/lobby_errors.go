package lobby

import "errors"

var ErrLobbyNotFound = errors.New("lobby not found")

var ErrLobbyFull = errors.New("lobby is full")

var ErrAlreadyJoined = errors.New("already a participant of this lobby")

var ErrNotAParticipant = errors.New("not a participant of this lobby")

var ErrInvalidArgument = errors.New("invalid argument")

var ErrUnauthenticated = errors.New("missing or invalid credential")

// ErrTransient marks network and timeout failures that the caller may
// retry; it is always wrapped around the underlying error.
var ErrTransient = errors.New("transient failure")

// Stable machine-readable codes carried in error payloads on the wire.
// Clients match on these, never on message wording.
const (
	CodeLobbyNotFound   = "LOBBY_NOT_FOUND"
	CodeLobbyFull       = "LOBBY_FULL"
	CodeAlreadyJoined   = "ALREADY_JOINED"
	CodeNotAParticipant = "NOT_A_PARTICIPANT"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeUnauthenticated = "UNAUTHENTICATED"
)

var errsByCode = map[string]error{
	CodeLobbyNotFound:   ErrLobbyNotFound,
	CodeLobbyFull:       ErrLobbyFull,
	CodeAlreadyJoined:   ErrAlreadyJoined,
	CodeNotAParticipant: ErrNotAParticipant,
	CodeInvalidArgument: ErrInvalidArgument,
	CodeUnauthenticated: ErrUnauthenticated,
}

// ErrFromCode resolves a wire code to its sentinel error, or nil when the
// code is unknown.
func ErrFromCode(code string) error {
	return errsByCode[code]
}

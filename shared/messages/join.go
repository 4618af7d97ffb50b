package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request joining the game.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// The first client pilots the player; later ones spectate.
type JoinAccepted struct {
	SessionID  string
	NetworkID  esync.NetworkId // The player entity, zero when there is none
	Pilot      bool
	ServerName string
	TickRate   int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}

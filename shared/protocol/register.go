package protocol

import (
	"github.com/automoto/ashgrave/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition  uint = 10
	SyncIDNetVelocity  uint = 11
	SyncIDNetActor     uint = 12
	SyncIDNetHitbox    uint = 13
	SyncIDNetGameState uint = 15
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetVelocity uint8 = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return err
	}

	// Discrete state: health, AI and animation changes snap.
	if err := esync.RegisterComponent(
		SyncIDNetActor,
		netcomponents.NetActorData{},
		netcomponents.NetActor,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetHitbox,
		netcomponents.NetHitboxData{},
		netcomponents.NetHitbox,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetGameState,
		netcomponents.NetGameStateData{},
		netcomponents.NetGameState,
	); err != nil {
		return err
	}

	return nil
}

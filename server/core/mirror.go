package core

import (
	"github.com/automoto/ashgrave/components"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/shared/netcomponents"
	"github.com/automoto/ashgrave/sim"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

const kindGameState = "game_state"

// replicator marks entities for network sync and reports their ids.
type replicator interface {
	Track(e *donburi.Entity, kind string) error
	NetworkID(e *donburi.Entry) uint
}

type esyncReplicator struct {
	world donburi.World
}

func (r esyncReplicator) Track(e *donburi.Entity, kind string) error {
	switch kind {
	case kindGameState:
		return srvsync.NetworkSync(r.world, e, netcomponents.NetGameState)
	case string(components.KindHitbox):
		return srvsync.NetworkSync(r.world, e, netcomponents.NetHitbox)
	}
	return srvsync.NetworkSync(r.world, e,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetActor,
	)
}

func (r esyncReplicator) NetworkID(e *donburi.Entry) uint {
	if id := esync.GetNetworkId(e); id != nil {
		return uint(*id)
	}
	return 0
}

// mirror copies each simulation frame into network components on a separate
// world that necs snapshots.
type mirror struct {
	world   donburi.World
	rep     replicator
	tracked map[donburi.Entity]donburi.Entity // sim entity -> net entity
	state   donburi.Entity
	hasGame bool
}

func newMirror(world donburi.World, rep replicator) *mirror {
	return &mirror{
		world:   world,
		rep:     rep,
		tracked: make(map[donburi.Entity]donburi.Entity),
	}
}

// apply updates the net world from f and returns the network ids of the sim
// entities that disappeared.
func (m *mirror) apply(f *sim.Frame, state netcomponents.NetGameStateData, lastSequence uint32) map[donburi.Entity]uint {
	m.applyState(state)

	seen := make(map[donburi.Entity]bool, len(f.Actors)+len(f.Hitboxes))
	for _, a := range f.Actors {
		seen[a.Entity] = true
		e, ok := m.ensure(a.Entity, string(a.Kind),
			netcomponents.NetPosition, netcomponents.NetVelocity, netcomponents.NetActor)
		if !ok {
			continue
		}
		entry := m.world.Entry(e)
		netcomponents.NetPosition.SetValue(entry, netcomponents.NetPositionData{
			X: a.Position.X, Y: a.Position.Y, Z: a.Position.Z,
			Yaw: a.Yaw,
		})
		netcomponents.NetVelocity.SetValue(entry, netcomponents.NetVelocityData{
			X: a.Velocity.X, Y: a.Velocity.Y, Z: a.Velocity.Z,
		})
		actor := netcomponents.NetActorData{
			Kind:       string(a.Kind),
			EnemyType:  a.EnemyType,
			Health:     a.Health,
			MaxHealth:  a.MaxHealth,
			Stamina:    a.Stamina,
			MaxStamina: a.MaxStamina,
			Attacking:  a.Attacking,
			AIState:    a.AIState,
			Animation:  a.Animation,
		}
		if a.Kind == components.KindPlayer {
			actor.LastSequence = lastSequence
		}
		netcomponents.NetActor.SetValue(entry, actor)
	}

	for _, h := range f.Hitboxes {
		seen[h.Entity] = true
		e, ok := m.ensure(h.Entity, string(components.KindHitbox), netcomponents.NetHitbox)
		if !ok {
			continue
		}
		netcomponents.NetHitbox.SetValue(m.world.Entry(e), netcomponents.NetHitboxData{
			X: h.Center.X, Y: h.Center.Y, Z: h.Center.Z,
			Radius:         h.Radius,
			OwnerNetworkID: m.networkID(h.Owner),
			Active:         h.Active,
		})
	}

	removed := make(map[donburi.Entity]uint)
	for simEntity, netEntity := range m.tracked {
		if seen[simEntity] {
			continue
		}
		removed[simEntity] = m.networkID(simEntity)
		if m.world.Valid(netEntity) {
			m.world.Remove(netEntity)
		}
		delete(m.tracked, simEntity)
	}
	return removed
}

func (m *mirror) applyState(state netcomponents.NetGameStateData) {
	if !m.hasGame {
		e := m.world.Create(netcomponents.NetGameState)
		if err := m.rep.Track(&e, kindGameState); err != nil {
			logger.Log.WithError(err).Warn("failed to sync game state")
			m.world.Remove(e)
			return
		}
		m.state = e
		m.hasGame = true
	}
	netcomponents.NetGameState.SetValue(m.world.Entry(m.state), state)
}

func (m *mirror) ensure(simEntity donburi.Entity, kind string, comps ...donburi.IComponentType) (donburi.Entity, bool) {
	if e, ok := m.tracked[simEntity]; ok {
		return e, true
	}

	e := m.world.Create(comps...)
	if err := m.rep.Track(&e, kind); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"entity": simEntity,
			"kind":   kind,
		}).WithError(err).Warn("failed to sync entity")
		m.world.Remove(e)
		return 0, false
	}
	m.tracked[simEntity] = e
	return e, true
}

// networkID maps a sim entity to the id clients know it by, or 0.
func (m *mirror) networkID(simEntity donburi.Entity) uint {
	e, ok := m.tracked[simEntity]
	if !ok || !m.world.Valid(e) {
		return 0
	}
	return m.rep.NetworkID(m.world.Entry(e))
}

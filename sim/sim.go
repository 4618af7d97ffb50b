// Package sim is the entry point a host drives once per tick. It owns the
// donburi world, registers the systems in their fixed order, and reports
// what happened as a Frame.
package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/ashgrave/ai"
	"github.com/automoto/ashgrave/combat"
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/shared/leveldata"
	"github.com/automoto/ashgrave/systems"
	"github.com/automoto/ashgrave/systems/factory"
	"github.com/automoto/ashgrave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoPlayer     = errors.New("sim: no player")
	ErrUnknownActor = errors.New("sim: unknown actor")
)

type Options struct {
	// IntegrateMotion moves actors by their velocity each tick. Hosts with
	// their own physics leave it off and report positions through Place.
	IntegrateMotion bool
}

type Simulation struct {
	ecs     *ecs.ECS
	player  *donburi.Entry
	lastHUD HUD
}

func New(opts Options) *Simulation {
	s := &Simulation{ecs: ecs.NewECS(donburi.NewWorld())}
	factory.CreateSpace(s.ecs)
	systems.GetOrCreateClock(s.ecs)
	systems.GetOrCreateSession(s.ecs)
	factory.GetOrCreateEventLog(s.ecs)

	s.ecs.AddSystem(systems.UpdateClock)
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAttacks))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHitboxes))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyAttacks))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSoulRecovery))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	if opts.IntegrateMotion {
		s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMotion))
	}

	return s
}

// World exposes the underlying world for hosts that mirror entities.
func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// SpawnPlayer creates the player, replacing any existing one.
func (s *Simulation) SpawnPlayer(pos gamemath.Vec3, yaw float64) donburi.Entity {
	if s.hasPlayer() {
		factory.Destroy(s.ecs, s.player, components.KindPlayer)
	}
	s.player = factory.CreatePlayer(s.ecs, pos, yaw)
	return s.player.Entity()
}

// Player returns the player entity, if one is alive in the world.
func (s *Simulation) Player() (donburi.Entity, bool) {
	if !s.hasPlayer() {
		return 0, false
	}
	return s.player.Entity(), true
}

// SpawnEnemy creates an enemy of a configured type. Two or more patrol
// points give it a route to walk while patrolling.
func (s *Simulation) SpawnEnemy(enemyType string, pos gamemath.Vec3, patrol ...gamemath.Vec3) (donburi.Entity, error) {
	var path *components.PatrolPathData
	if len(patrol) > 0 {
		path = &components.PatrolPathData{Points: patrol}
	}
	e, err := factory.CreateEnemy(s.ecs, pos, enemyType, path)
	if err != nil {
		return 0, fmt.Errorf("sim: spawn enemy: %w", err)
	}
	return e.Entity(), nil
}

// Populate spawns the player at the first spawn point and every enemy of an
// encounter.
func (s *Simulation) Populate(enc *leveldata.Encounter) error {
	if len(enc.PlayerSpawns) == 0 {
		return fmt.Errorf("sim: populate %s: %w", enc.Name, leveldata.ErrNoPlayerSpawn)
	}
	s.SpawnPlayer(groundPoint(enc.PlayerSpawns[0].Position.X, enc.PlayerSpawns[0].Position.Y), 0)

	for _, spawn := range enc.EnemySpawns {
		var path *components.PatrolPathData
		if p, ok := enc.PatrolPaths[spawn.PathName]; ok {
			path = &components.PatrolPathData{Name: p.Name, Speed: p.Speed}
			for _, pt := range p.Points {
				path.Points = append(path.Points, groundPoint(pt.X, pt.Y))
			}
		}
		pos := groundPoint(spawn.Position.X, spawn.Position.Y)
		if _, err := factory.CreateEnemy(s.ecs, pos, spawn.EnemyType, path); err != nil {
			return fmt.Errorf("sim: populate %s: %w", enc.Name, err)
		}
	}
	return nil
}

func groundPoint(x, z float64) gamemath.Vec3 {
	return gamemath.Vec3{X: x, Z: z}
}

// SetInput stores the controls for the next tick. Edge actions latch until a
// tick consumes them, so a press is never lost between two SetInput calls.
func (s *Simulation) SetInput(actions [cfg.ActionCount]bool, yaw float64) error {
	if !s.hasPlayer() {
		return ErrNoPlayer
	}
	input := components.PlayerInput.Get(s.player)
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		if a.IsEdge() {
			input.Actions[a] = input.Actions[a] || actions[a]
			continue
		}
		input.Actions[a] = actions[a]
	}
	input.Yaw = yaw
	return nil
}

// Place reports an actor's position from host physics.
func (s *Simulation) Place(entity donburi.Entity, pos gamemath.Vec3) error {
	e, err := s.actor(entity)
	if err != nil {
		return err
	}
	components.Transform.Get(e).Position = pos
	return nil
}

// SetVelocity overwrites an actor's velocity. Hosts use it for the vertical
// component they simulate.
func (s *Simulation) SetVelocity(entity donburi.Entity, v gamemath.Vec3) error {
	e, err := s.actor(entity)
	if err != nil {
		return err
	}
	components.Velocity.Get(e).Vec3 = v
	return nil
}

// Stun knocks an enemy into the stunned state for duration seconds.
func (s *Simulation) Stun(entity donburi.Entity, duration float64) error {
	e, err := s.actor(entity)
	if err != nil {
		return err
	}
	if !e.HasComponent(components.AI) {
		return fmt.Errorf("%w: %v is not an enemy", ErrUnknownActor, entity)
	}
	ai.Stun(components.AI.Get(e), duration)
	return nil
}

func (s *Simulation) actor(entity donburi.Entity) (*donburi.Entry, error) {
	if !s.ecs.World.Valid(entity) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownActor, entity)
	}
	e := s.ecs.World.Entry(entity)
	if !e.HasComponent(components.Transform) || !e.HasComponent(components.Velocity) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownActor, entity)
	}
	return e, nil
}

func (s *Simulation) hasPlayer() bool {
	return s.player != nil && s.player.Valid()
}

// Tick advances the world by dt seconds and returns what happened.
func (s *Simulation) Tick(dt float64) *Frame {
	systems.GetOrCreateClock(s.ecs).DT = dt
	s.ecs.Update()

	frame := s.frame()

	if s.hasPlayer() {
		components.PlayerInput.Get(s.player).ClearEdges()
	}
	factory.GetOrCreateEventLog(s.ecs).Reset()
	return frame
}

// Respawn revives the player at pos with full health and stamina. Only valid
// on the death screen.
func (s *Simulation) Respawn(pos gamemath.Vec3) error {
	if !s.hasPlayer() {
		return ErrNoPlayer
	}
	if err := systems.ChangeMode(s.ecs, cfg.EventRespawn); err != nil {
		return fmt.Errorf("sim: respawn: %w", err)
	}

	e := s.player
	components.Health.Get(e).Restore()
	stamina := components.Stamina.Get(e)
	stamina.Current = stamina.Max
	components.AttackState.SetValue(e, combat.NewAttackState())
	components.Player.SetValue(e, components.PlayerData{})
	components.Velocity.SetValue(e, components.VelocityData{})
	components.Transform.Get(e).Position = pos
	components.Animation.Get(e).Reset()
	return nil
}

func (s *Simulation) Pause() error {
	if err := systems.ChangeMode(s.ecs, cfg.EventPause); err != nil {
		return fmt.Errorf("sim: pause: %w", err)
	}
	return nil
}

func (s *Simulation) Resume() error {
	if err := systems.ChangeMode(s.ecs, cfg.EventResume); err != nil {
		return fmt.Errorf("sim: resume: %w", err)
	}
	return nil
}

func (s *Simulation) Mode() cfg.GameMode {
	return systems.CurrentMode(s.ecs)
}

// Souls returns the player's carried souls.
func (s *Simulation) Souls() int {
	if !s.hasPlayer() {
		return 0
	}
	return components.Souls.Get(s.player).Count
}

func (s *Simulation) SetSouls(n int) error {
	if !s.hasPlayer() {
		return ErrNoPlayer
	}
	components.Souls.Get(s.player).Count = n
	return nil
}

// Marker reports the unrecovered soul drop, if there is one.
func (s *Simulation) Marker() (pos gamemath.Vec3, souls int, ok bool) {
	e, found := tags.DeathMarker.First(s.ecs.World)
	if !found {
		return gamemath.Vec3{}, 0, false
	}
	m := components.DeathMarker.Get(e)
	return m.Position, m.Souls, true
}

// RestoreMarker places a soul drop saved from an earlier session, replacing
// any existing one.
func (s *Simulation) RestoreMarker(pos gamemath.Vec3, souls int) {
	if e, ok := tags.DeathMarker.First(s.ecs.World); ok {
		factory.Destroy(s.ecs, e, components.KindDeathMarker)
	}
	if souls > 0 {
		factory.CreateDeathMarker(s.ecs, pos, souls)
	}
}

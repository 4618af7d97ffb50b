package systems

import (
	"context"

	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// NewModeMachine builds the session machine. Play starts immediately.
func NewModeMachine() *fsm.FSM {
	return fsm.NewFSM(
		cfg.ModePlaying,
		fsm.Events{
			{Name: cfg.EventPause, Src: []string{cfg.ModePlaying}, Dst: cfg.ModePaused},
			{Name: cfg.EventResume, Src: []string{cfg.ModePaused}, Dst: cfg.ModePlaying},
			{Name: cfg.EventDie, Src: []string{cfg.ModePlaying}, Dst: cfg.ModeDeath},
			{Name: cfg.EventRespawn, Src: []string{cfg.ModeDeath}, Dst: cfg.ModePlaying},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log.WithFields(logrus.Fields{
					"event": e.Event,
					"from":  e.Src,
					"to":    e.Dst,
				}).Info("game mode changed")
			},
		},
	)
}

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Session))
		components.Session.SetValue(ent, components.SessionData{Mode: NewModeMachine()})
	}

	ent, _ := components.Session.First(ecs.World)
	return components.Session.Get(ent)
}

// ChangeMode fires a session event. Events the current mode does not accept
// return the machine's error and leave the mode alone.
func ChangeMode(ecs *ecs.ECS, event string) error {
	return GetOrCreateSession(ecs).Mode.Event(context.Background(), event)
}

func CurrentMode(ecs *ecs.ECS) cfg.GameMode {
	return GetOrCreateSession(ecs).Mode.Current()
}

// WithGameplayChecks wraps a system to skip execution outside of play.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if CurrentMode(e) != cfg.ModePlaying {
			return
		}
		system(e)
	}
}

// WithPauseCheck wraps a system to skip execution only while paused. Systems
// that must keep running on the death screen use it.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if CurrentMode(e) == cfg.ModePaused {
			return
		}
		system(e)
	}
}

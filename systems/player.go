package systems

import (
	"github.com/automoto/ashgrave/components"
	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		if components.Health.Get(e).IsDead() {
			vel.Vec3 = gamemath.StopHorizontal(vel.Vec3)
			return
		}

		player := components.Player.Get(e)
		input := components.PlayerInput.Get(e)
		transform := components.Transform.Get(e)
		stamina := components.Stamina.Get(e)

		tickPlayerTimers(player, dt)

		dir := moveDirection(input)
		moving := dir.HorizontalLength() > 0

		handleRoll(e, player, input, transform, stamina, dir, moving)
		handleParry(e, player, input, stamina)

		player.Sprinting = false
		speed := cfg.Player.MoveSpeed
		switch {
		case player.Rolling:
			dir = transform.Forward()
			speed *= cfg.Player.RollSpeedMultiplier
		case !moving:
			speed = 0
		case input.Held(cfg.ActionSprint) && stamina.TrySpend(cfg.Player.SprintCostPerSecond*dt):
			player.Sprinting = true
			speed *= cfg.Player.SprintMultiplier
		}

		if moving && !player.Rolling {
			transform.Yaw = gamemath.YawOf(dir)
		}
		vel.X = dir.X * speed
		vel.Z = dir.Z * speed

		if !player.Rolling {
			stamina.Regen(dt)
		}
	})
}

func tickPlayerTimers(player *components.PlayerData, dt float64) {
	if player.Rolling {
		player.RollTimer -= dt
		if player.RollTimer <= 0 {
			player.RollTimer = 0
			player.Rolling = false
		}
	}
	if player.Parrying {
		player.ParryTimer -= dt
		if player.ParryTimer <= 0 {
			player.ParryTimer = 0
			player.Parrying = false
		}
	}
}

// moveDirection turns the held directions into a unit vector relative to the
// camera heading.
func moveDirection(input *components.PlayerInputData) gamemath.Vec3 {
	forward := gamemath.YawForward(input.Yaw)
	right := gamemath.YawRight(input.Yaw)

	var dir gamemath.Vec3
	if input.Held(cfg.ActionMoveForward) {
		dir = dir.Add(forward)
	}
	if input.Held(cfg.ActionMoveBack) {
		dir = dir.Sub(forward)
	}
	if input.Held(cfg.ActionMoveRight) {
		dir = dir.Add(right)
	}
	if input.Held(cfg.ActionMoveLeft) {
		dir = dir.Sub(right)
	}
	return dir.Normalize()
}

func handleRoll(e *donburi.Entry, player *components.PlayerData, input *components.PlayerInputData,
	transform *components.TransformData, stamina *components.StaminaData, dir gamemath.Vec3, moving bool) {
	if player.Rolling || !input.Triggered(cfg.ActionRoll) {
		return
	}
	if !stamina.TrySpend(cfg.Player.RollCost) {
		logger.Log.WithFields(logrus.Fields{
			"entity":  e.Entity(),
			"stamina": stamina.Current,
		}).Debug("roll rejected")
		return
	}
	// Roll toward the held direction, or straight ahead when standing still.
	if moving {
		transform.Yaw = gamemath.YawOf(dir)
	}
	player.Rolling = true
	player.RollTimer = cfg.Player.RollDuration
}

func handleParry(e *donburi.Entry, player *components.PlayerData, input *components.PlayerInputData, stamina *components.StaminaData) {
	if player.Parrying || player.Rolling {
		return
	}
	if !input.Held(cfg.ActionBlock) || !input.Triggered(cfg.ActionSecondary) {
		return
	}
	if !stamina.TrySpend(cfg.Player.ParryCost) {
		logger.Log.WithFields(logrus.Fields{
			"entity":  e.Entity(),
			"stamina": stamina.Current,
		}).Debug("parry rejected")
		return
	}
	player.Parrying = true
	player.ParryTimer = cfg.Player.ParryDuration
}

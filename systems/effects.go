package systems

import (
	"github.com/automoto/ashgrave/components"
	"github.com/automoto/ashgrave/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects fades attack effects and removes them when their time is up.
func UpdateEffects(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).DT

	var done []*donburi.Entry
	components.AttackEffect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.AttackEffect.Get(e)
		fx.Lifetime -= dt
		if fx.Fade != nil {
			fx.Alpha, _ = fx.Fade.Update(float32(dt))
		}
		if fx.Lifetime <= 0 {
			done = append(done, e)
		}
	})

	for _, e := range done {
		factory.Destroy(ecs, e, components.KindAttackEffect)
	}
}

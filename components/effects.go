package components

import (
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AttackEffectData is the presentation-only flash spawned when an enemy
// attack lands. It has no gameplay effect.
type AttackEffectData struct {
	Source   donburi.Entity
	Position gamemath.Vec3
	Lifetime float64 // seconds remaining
	Alpha    float32
	Fade     *gween.Tween
}

var AttackEffect = donburi.NewComponentType[AttackEffectData]()

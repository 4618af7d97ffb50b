package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Hitbox       = donburi.NewTag().SetName("Hitbox")
	AttackEffect = donburi.NewTag().SetName("AttackEffect")
	DeathMarker  = donburi.NewTag().SetName("DeathMarker")
)

// Resolv tags for broadphase queries
const (
	ResolvActor  = "actor"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvHitbox = "Hitbox"
	ResolvMarker = "marker"
)

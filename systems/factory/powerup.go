package factory

import (
	"github.com/automoto/xtremepaddle/archetypes"
	"github.com/automoto/xtremepaddle/components"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePowerUpPool spawns one un-placed power-up per pool slot. Their resolv
// objects only join the space while placed.
func CreatePowerUpPool(ecs *ecs.ECS) []*donburi.Entry {
	pool := make([]*donburi.Entry, 0, len(components.PowerUpPool))
	for _, slot := range components.PowerUpPool {
		p := archetypes.PowerUp.Spawn(ecs)

		data := components.NewPowerUp(slot)
		components.PowerUp.SetValue(p, data)
		newObject(ecs, p, data.Bounds(), false, tags.ResolvPowerUp)

		pool = append(pool, p)
	}
	return pool
}

package systems

import (
	"github.com/automoto/xtremepaddle/components"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors each entity's collision rectangle onto its resolv object
func UpdateObjects(e *ecs.ECS) {
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		components.Object.Get(entry).SyncTo(components.Ball.Get(entry).Bounds())
	})
	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		components.Object.Get(entry).SyncTo(components.Paddle.Get(entry).Bounds())
	})
	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		p := components.PowerUp.Get(entry)
		if p.Placed {
			components.Object.Get(entry).SyncTo(p.Bounds())
		}
	})
}

package factory

import (
	"github.com/automoto/xtremepaddle/archetypes"
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(int(cfg.Field.Width), int(cfg.Field.Height), spaceCellSize, spaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}

// newObject builds the resolv object for an entity and, when inSpace is set,
// adds it to the match space.
func newObject(ecs *ecs.ECS, entry *donburi.Entry, r components.Rect, inSpace bool, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if !inSpace {
		return obj
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

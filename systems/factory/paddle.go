package factory

import (
	"image/color"

	"github.com/automoto/xtremepaddle/archetypes"
	"github.com/automoto/xtremepaddle/components"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePaddle spawns a paddle already standing on its home spot
func CreatePaddle(ecs *ecs.ECS, role components.Role, c color.RGBA, home dmath.Vec2) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	data := components.NewPaddle(role, c, home)
	data.Place()
	components.Paddle.SetValue(paddle, data)
	newObject(ecs, paddle, data.Bounds(), true, tags.ResolvPaddle)

	return paddle
}

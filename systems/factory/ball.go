package factory

import (
	"image/color"

	"github.com/automoto/xtremepaddle/archetypes"
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBall(ecs *ecs.ECS, setup cfg.MatchSetup, c color.RGBA) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	data := components.NewBall(setup, c)
	components.Ball.SetValue(ball, data)
	newObject(ecs, ball, data.Bounds(), true, tags.ResolvBall)

	return ball
}

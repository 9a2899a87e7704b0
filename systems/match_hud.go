package systems

import (
	"strconv"

	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawMatchHUD renders both scores either side of the center line, each with
// a drop shadow. Survival shows the streak alone.
func DrawMatchHUD(e *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(e)
	if match == nil {
		return
	}
	face := fonts.Score.Get()
	y := int(cfg.Match.ScoreMarginTop)
	gap := int(cfg.Match.ScoreGapToCenter)
	center := int(cfg.Field.SplitX)

	if match.Setup.Mode == cfg.ModeSurvival {
		drawShadowed(screen, strconv.Itoa(match.Streak()), face, center+gap, y)
		return
	}

	left := strconv.Itoa(match.ScoreLeft)
	leftWidth := font.MeasureString(face, left).Ceil()
	drawShadowed(screen, left, face, center-gap-leftWidth, y)
	drawShadowed(screen, strconv.Itoa(match.ScoreRight), face, center+gap, y)
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int) {
	text.Draw(screen, s, face, x+2, y+2, cfg.BlackOverlay)
	text.Draw(screen, s, face, x, y, cfg.White)
}

package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/automoto/xtremepaddle/assets"
	"github.com/automoto/xtremepaddle/components"
	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/automoto/xtremepaddle/fonts"
	"github.com/automoto/xtremepaddle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	centerDashLength = 16
	centerDashGap    = 12
)

// NewCourtRenderer draws the themed court behind everything else
func NewCourtRenderer(theme assets.Theme) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		DrawCourt(screen, theme)
	}
}

// DrawCourt fills the field and draws the dashed center line
func DrawCourt(screen *ebiten.Image, theme assets.Theme) {
	screen.Fill(theme.Background)

	w := float32(cfg.Field.Width)
	h := float32(cfg.Field.Height)
	vector.FillRect(screen, 0, 0, w, 4, theme.Accent, false)
	vector.FillRect(screen, 0, h-4, w, 4, theme.Accent, false)

	x := float32(cfg.Field.SplitX)
	for y := float32(0); y < h; y += centerDashLength + centerDashGap {
		vector.StrokeLine(screen, x, y, x, min(y+centerDashLength, h), 3, theme.Line, false)
	}
}

func DrawPaddles(e *ecs.ECS, screen *ebiten.Image) {
	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Paddle.Get(entry)
		if p.Color.A == 0 {
			return
		}
		b := p.Bounds()
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), p.Color, true)
		if p.Frozen {
			vector.FillRect(screen, float32(b.X)-2, float32(b.Y)-2, float32(b.W)+4, float32(b.H)+4, cfg.FreezeTint, true)
		}
	})
}

func DrawBall(e *ecs.ECS, screen *ebiten.Image) {
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		b := components.Ball.Get(entry)
		if b.Color.A == 0 {
			return
		}
		r := b.Bounds()
		vector.FillCircle(screen, float32(r.CenterX()), float32(r.CenterY()), float32(r.W/2), b.Color, true)
	})
}

var powerUpGlyphs = map[components.PowerUpKind]string{
	components.KindBallSize:        "S",
	components.KindBallInvisible:   "?",
	components.KindBallSpeed:       "V",
	components.KindFreeze:          "F",
	components.KindPaddleGrow:      "+",
	components.KindPaddleShrink:    "-",
	components.KindPaddleInvisible: "H",
}

// polarity values already reported as undrawable
var warnedPolarities = map[components.Polarity]bool{}

// DrawPowerUps draws the placed power-ups of an Xtreme match as spinning
// diamonds tinted by polarity
func DrawPowerUps(e *ecs.ECS, screen *ebiten.Image) {
	match := GetMatch(e)
	if match == nil || !match.Xtreme {
		return
	}

	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		p := components.PowerUp.Get(entry)
		if !p.Placed {
			return
		}
		c, ok := p.Polarity.Color()
		if !ok {
			if !warnedPolarities[p.Polarity] {
				log.Printf("Warning: power-up %s has invalid polarity %d, not drawn", p.Kind, p.Polarity)
				warnedPolarities[p.Polarity] = true
			}
			return
		}

		b := p.Bounds()
		cx, cy := b.CenterX(), b.CenterY()
		drawDiamond(screen, cx, cy, b.W/2, p.Rotation, c)
		text.Draw(screen, powerUpGlyphs[p.Kind], fonts.Small.Get(), int(cx)-3, int(cy)+4, cfg.White)
	})
}

func drawDiamond(screen *ebiten.Image, cx, cy, radius, rotationDeg float64, c color.Color) {
	var xs, ys [4]float32
	for i := range xs {
		a := (rotationDeg + float64(i)*90) * math.Pi / 180
		xs[i] = float32(cx + math.Cos(a)*radius)
		ys[i] = float32(cy + math.Sin(a)*radius)
	}
	for i := range xs {
		j := (i + 1) % len(xs)
		vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], 3, c, true)
	}
	vector.FillCircle(screen, float32(cx), float32(cy), float32(radius/3), c, true)
}

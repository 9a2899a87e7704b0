package components

import (
	"image/color"
	"math"

	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BallData is the match ball. Streak counts serves in streak-ramp matches and
// feeds the launch speed.
type BallData struct {
	Body
	Velocity     dmath.Vec2
	Streak       int
	Ramp         cfg.SpeedRamp
	Tier         int
	Color        color.RGBA
	DefaultColor color.RGBA
}

var Ball = donburi.NewComponentType[BallData]()

func NewBall(setup cfg.MatchSetup, c color.RGBA) BallData {
	return BallData{
		Body:         NewBody(RectFromBox(cfg.Ball.Collision)),
		Ramp:         setup.Ramp,
		Tier:         setup.Tier,
		Color:        c,
		DefaultColor: c,
	}
}

// Update integrates the ball position over dt seconds
func (b *BallData) Update(dt float64) {
	if b.Ramp == cfg.RampAscending {
		b.Velocity.X *= cfg.Ball.GrowthPerTick
		b.Velocity.Y *= cfg.Ball.GrowthPerTick
	}
	b.Position.X += b.Velocity.X * dt
	b.Position.Y += b.Velocity.Y * dt
}

// ClampToScreen keeps the ball between the top and bottom of the field and
// reflects its vertical velocity. Returns true when it bounced.
func (b *BallData) ClampToScreen(n Notifier) bool {
	bounds := b.Bounds()
	switch {
	case bounds.Top() < 0:
		b.Position.Y = -b.Local.Y * b.Scale
		b.Velocity.Y = math.Abs(b.Velocity.Y)
	case bounds.Bottom() > cfg.Field.Height:
		b.Position.Y = cfg.Field.Height - (b.Local.Y+b.Local.H)*b.Scale
		b.Velocity.Y = -math.Abs(b.Velocity.Y)
	default:
		return false
	}
	notify(n, cfg.SoundPlink)
	return true
}

// IsOffscreen returns 1 once the ball has left past the right edge, -1 once it
// has fully left past the left edge and 0 otherwise.
func (b *BallData) IsOffscreen() int {
	switch {
	case b.Position.X >= cfg.Field.Width:
		return 1
	case b.Position.X <= -cfg.Ball.SpriteSize:
		return -1
	}
	return 0
}

// Place serves the ball from the field center with a random launch angle in
// [-MaxLaunchDeg, MaxLaunchDeg], flipped half of the time.
func (b *BallData) Place(r Rand) {
	n := cfg.Ball.MaxLaunchDeg
	angle := float64(r.Intn(2*n+1) - n)
	flip := r.Intn(2) == 0
	b.Launch(angle, flip)
}

// Launch serves the ball at angleDeg, rotated by 180 degrees when flip is set
func (b *BallData) Launch(angleDeg float64, flip bool) {
	b.CenterAt(dmath.Vec2{X: cfg.Field.Center.X, Y: cfg.Field.Center.Y})

	rad := degToRad(angleDeg)
	if flip {
		rad += math.Pi
	}
	if b.Ramp == cfg.RampStreak {
		b.Streak++
	}

	speed := b.LaunchSpeed()
	b.Velocity = dmath.Vec2{X: math.Cos(rad) * speed, Y: math.Sin(rad) * speed}
}

// LaunchSpeed is the serve speed for the current ramp and streak
func (b *BallData) LaunchSpeed() float64 {
	var component float64
	switch b.Ramp {
	case cfg.RampFixed:
		component = float64(b.Tier)
	case cfg.RampAscending:
		component = cfg.Ball.RampSeed
	}
	return cfg.Ball.BaseSpeed * (component + 2 + float64(b.Streak/2))
}

// Reset restores the default scale and color. Velocity is left alone.
func (b *BallData) Reset() {
	b.Scale = 1
	b.Color = b.DefaultColor
}

// Transparentize hides the ball without touching its collision geometry
func (b *BallData) Transparentize(n Notifier) {
	notify(n, cfg.SoundInvisible)
	b.Color = cfg.Transparent
}

// Resize changes the scale by delta, never letting it drop below one step
func (b *BallData) Resize(delta float64) {
	b.Scale = math.Max(b.Scale+delta, cfg.PowerUp.BallScaleStep)
}

func (b *BallData) Speed() float64 {
	return vecLen(b.Velocity)
}

package components

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PowerUpKind is the effect a power-up applies when the ball runs into it
type PowerUpKind int

const (
	KindBallSize PowerUpKind = iota + 1
	KindBallInvisible
	KindBallSpeed
	KindFreeze
	KindPaddleGrow
	KindPaddleShrink
	KindPaddleInvisible
)

func (k PowerUpKind) String() string {
	switch k {
	case KindBallSize:
		return "BallSize"
	case KindBallInvisible:
		return "BallInvisible"
	case KindBallSpeed:
		return "BallSpeed"
	case KindFreeze:
		return "Freeze"
	case KindPaddleGrow:
		return "PaddleGrow"
	case KindPaddleShrink:
		return "PaddleShrink"
	case KindPaddleInvisible:
		return "PaddleInvisible"
	}
	return fmt.Sprintf("PowerUpKind(%d)", int(k))
}

// Polarity decides which paddle a paddle power-up targets. Beneficial effects
// help whoever hit the ball last, harmful ones hurt them.
type Polarity int

const (
	Neutral Polarity = iota
	Beneficial
	Harmful
)

// Color returns the tint drawn for the polarity. ok is false for values
// outside the known set.
func (p Polarity) Color() (c color.RGBA, ok bool) {
	switch p {
	case Neutral:
		return cfg.Orange, true
	case Beneficial:
		return cfg.Green, true
	case Harmful:
		return cfg.Red, true
	}
	return color.RGBA{}, false
}

// PowerUpSlot is one kind/polarity combination of the pool
type PowerUpSlot struct {
	Kind     PowerUpKind
	Polarity Polarity
}

// PowerUpPool lists the fixed power-up set every match recycles
var PowerUpPool = []PowerUpSlot{
	{KindBallSize, Neutral},
	{KindBallInvisible, Neutral},
	{KindBallSpeed, Neutral},
	{KindFreeze, Beneficial},
	{KindFreeze, Harmful},
	{KindPaddleGrow, Beneficial},
	{KindPaddleGrow, Harmful},
	{KindPaddleShrink, Beneficial},
	{KindPaddleShrink, Harmful},
	{KindPaddleInvisible, Beneficial},
	{KindPaddleInvisible, Harmful},
}

// PowerUpData is one pooled power-up. Placed is false while it waits off-field.
type PowerUpData struct {
	Body
	Kind     PowerUpKind
	Polarity Polarity
	Rotation float64 // degrees
	Placed   bool
}

var PowerUp = donburi.NewComponentType[PowerUpData]()

func NewPowerUp(slot PowerUpSlot) PowerUpData {
	p := PowerUpData{
		Body:     NewBody(RectFromBox(cfg.PowerUp.Collision)),
		Kind:     slot.Kind,
		Polarity: slot.Polarity,
	}
	p.Unplace()
	return p
}

// DefaultSpawnZone is the band power-ups are centered in when the court
// layout does not define one.
func DefaultSpawnZone() Rect {
	top := cfg.PowerUp.SpawnMarginY + cfg.PowerUp.SpriteSize
	bottom := cfg.Field.Height - cfg.PowerUp.SpawnMarginY - cfg.PowerUp.SpriteSize
	return Rect{
		X: cfg.PowerUp.SpawnMinX,
		Y: top,
		W: cfg.PowerUp.SpawnMaxX - cfg.PowerUp.SpawnMinX,
		H: bottom - top,
	}
}

// Update advances the idle rotation
func (p *PowerUpData) Update() {
	p.Rotation += cfg.PowerUp.RotationPerTick
	if p.Rotation >= 360 {
		p.Rotation -= 360
	}
}

// Place centers the power-up on a random point of zone
func (p *PowerUpData) Place(r Rand, zone Rect) {
	x := zone.X + float64(r.Intn(max(int(zone.W), 1)))
	y := zone.Y + float64(r.Intn(max(int(zone.H), 1)))
	p.CenterAt(dmath.Vec2{X: x, Y: y})
	p.Placed = true
}

// Unplace parks the power-up off-field where nothing can touch it
func (p *PowerUpData) Unplace() {
	p.Position = dmath.Vec2{X: cfg.PowerUp.OffFieldPosition.X, Y: cfg.PowerUp.OffFieldPosition.Y}
	p.Placed = false
}

// Collide applies the effect when the ball touches the power-up and reports
// whether it was consumed. p1 is the right paddle, left the other one.
// Paddle effects need to know who hit the ball last; with no horizontal
// travel that is unknown, so nothing happens and the power-up stays.
func (p *PowerUpData) Collide(ball *BallData, p1, left *PaddleData, n Notifier, r Rand) bool {
	if !p.Placed || !p.Bounds().Intersects(ball.Bounds()) {
		return false
	}

	switch p.Kind {
	case KindBallSize:
		if r.Intn(2) == 0 {
			ball.Resize(cfg.PowerUp.BallScaleStep)
		} else {
			ball.Resize(-cfg.PowerUp.BallScaleStep)
		}
		return true
	case KindBallInvisible:
		ball.Transparentize(n)
		return true
	case KindBallSpeed:
		f := cfg.PowerUp.SlowFactor
		if r.Intn(2) == 0 {
			f = cfg.PowerUp.FastFactor
		}
		ball.Velocity.X *= f
		ball.Velocity.Y *= f
		return true
	}

	var hitter, other *PaddleData
	switch {
	case ball.Velocity.X > 0:
		hitter, other = left, p1
	case ball.Velocity.X < 0:
		hitter, other = p1, left
	default:
		return false
	}

	// target takes the hindering effects, self the helping one
	target, self := hitter, other
	if p.Polarity == Beneficial {
		target, self = other, hitter
	}

	switch p.Kind {
	case KindFreeze:
		target.Freeze(n)
	case KindPaddleGrow:
		self.Resize(cfg.Paddle.ScaleStep)
	case KindPaddleShrink:
		target.Resize(-cfg.Paddle.ScaleStep)
	case KindPaddleInvisible:
		target.Transparentize(n)
	default:
		return false
	}
	return true
}

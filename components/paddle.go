package components

import (
	"image/color"
	"math"

	cfg "github.com/automoto/xtremepaddle/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Role identifies who controls a paddle
type Role int

const (
	RoleAI Role = iota
	RolePlayer1
	RolePlayer2
)

func (r Role) String() string {
	switch r {
	case RolePlayer1:
		return "Player 1"
	case RolePlayer2:
		return "Player 2"
	}
	return "CPU"
}

// PaddleData is one of the two match paddles. Player 1 plays on the right.
type PaddleData struct {
	Body
	Role         Role
	Frozen       bool
	Color        color.RGBA
	DefaultColor color.RGBA
	Home         dmath.Vec2
}

var Paddle = donburi.NewComponentType[PaddleData]()

func NewPaddle(role Role, c color.RGBA, home dmath.Vec2) PaddleData {
	return PaddleData{
		Body:         NewBody(RectFromBox(cfg.Paddle.Collision)),
		Role:         role,
		Color:        c,
		DefaultColor: c,
		Home:         home,
	}
}

// BounceAngle maps a normalized hit offset d in [-1,1] to an outgoing angle in
// radians. The quadratic curve makes edge hits deflect more steeply.
func BounceAngle(d float64) float64 {
	return d * d * degToRad(cfg.Paddle.MaxBounceDeg) * sign(d)
}

// Collide bounces the ball off the paddle when their rectangles intersect.
// The ball keeps its speed, leaves at BounceAngle of the hit offset and is
// snapped flush against the paddle's near edge.
func (p *PaddleData) Collide(ball *BallData) bool {
	pb := p.Bounds()
	bb := ball.Bounds()
	if !pb.Intersects(bb) {
		return false
	}

	speed := ball.Speed()
	dirX := sign(ball.Velocity.X)

	// a ball taller than the paddle can hit beyond its edges
	d := (bb.CenterY() - pb.CenterY()) / (pb.H / 2)
	d = max(-1, min(1, d))
	angle := BounceAngle(d)

	ball.Velocity = dmath.Vec2{
		X: -math.Cos(angle) * dirX * speed,
		Y: math.Sin(angle) * speed,
	}

	if ball.Velocity.X < 0 {
		ball.Position.X = pb.Left() - (ball.Local.X+ball.Local.W)*ball.Scale
	} else {
		ball.Position.X = pb.Right() - ball.Local.X*ball.Scale
	}
	return true
}

// AISpeed is the pursuit speed of the computer paddle
func AISpeed(setup cfg.MatchSetup, streak int) float64 {
	if setup.Ramp == cfg.RampFixed {
		if s, ok := cfg.Paddle.TierSpeeds[setup.Tier]; ok {
			return s
		}
	}
	return cfg.Ball.BaseSpeed * (cfg.Ball.RampSeed + float64(streak/2))
}

// UpdateAI chases the vertical center of the ball at speed, snapping onto it
// when it is closer than one tick of travel.
func (p *PaddleData) UpdateAI(dt float64, ball *BallData, speed float64) {
	target := ball.Bounds().CenterY() - (p.Local.Y+p.Local.H/2)*p.Scale
	delta := target - p.Position.Y
	step := speed * dt
	if math.Abs(delta) < step {
		p.Position.Y = target
	} else {
		p.Position.Y += sign(delta) * step
	}
	p.ClampToScreen()
}

// FollowPointer puts the paddle's origin half a collision height above y
func (p *PaddleData) FollowPointer(y float64) {
	p.Position.Y = y - p.Local.H*p.Scale/2
	p.ClampToScreen()
}

// MoveBy shifts the paddle vertically and keeps it on the field
func (p *PaddleData) MoveBy(dy float64) {
	p.Position.Y += dy
	p.ClampToScreen()
}

// ClampToScreen keeps the collision rectangle inside the field height
func (p *PaddleData) ClampToScreen() {
	bounds := p.Bounds()
	switch {
	case bounds.Top() < 0:
		p.Position.Y = -p.Local.Y * p.Scale
	case bounds.Bottom() > cfg.Field.Height:
		p.Position.Y = cfg.Field.Height - (p.Local.Y+p.Local.H)*p.Scale
	}
}

// Place puts the paddle back on its home spot
func (p *PaddleData) Place() {
	p.CenterAt(p.Home)
}

func (p *PaddleData) Reset() {
	p.Scale = 1
	p.Frozen = false
	p.Color = p.DefaultColor
}

func (p *PaddleData) Freeze(n Notifier) {
	notify(n, cfg.SoundFreeze)
	p.Frozen = true
	p.Color = cfg.White
}

func (p *PaddleData) Transparentize(n Notifier) {
	notify(n, cfg.SoundInvisible)
	p.Color = cfg.Transparent
}

// Resize changes the scale by delta, never letting it drop below one step
func (p *PaddleData) Resize(delta float64) {
	p.Scale = math.Max(p.Scale+delta, cfg.Paddle.ScaleStep)
	p.ClampToScreen()
}

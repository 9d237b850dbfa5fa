package jumper

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Sub-pixel resolution of the fixed-point integrator.
const subpixel = 256

// ErrNotGrounded is returned by RequestJump while the actor is in the air.
var ErrNotGrounded = errors.New("jumper: actor is not grounded")

// MoveState is the actor's movement state.
type MoveState int

const (
	Grounded MoveState = iota
	Airborne
)

// String returns the lowercase state name.
func (s MoveState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Motion is the complete physical state of the actor. Speed is in whole
// pixels per tick; Frac, Corr, Accel and AccelFall are in 1/256 units.
type Motion struct {
	X, Y float64 // center; X never changes
	W, H float64

	State     MoveState
	Speed     int // positive is downward
	Frac      int // acceleration remainder, carries into Speed
	Corr      int // position correction, carries into Y
	Accel     int
	AccelFall int

	HoldFrames int // ticks the input has been held while grounded
	Held       bool
	PrevHeld   bool

	Ticks     int // ticks seen by this actor
	JumpStart int // tick the current airborne phase began
	OriginY   float64
	Bucket    int // jump strength of the current airborne phase

	PrevY   float64
	Guarded bool // an airborne safeguard fired this tick
}

// Rect returns the actor's bounding box.
func (m Motion) Rect() core.RectF {
	return core.CenteredRectF(m.X, m.Y, m.W, m.H)
}

// Bottom returns the y of the actor's feet.
func (m Motion) Bottom() float64 {
	return m.Y + m.H/2
}

// Airtime returns the ticks spent in the current airborne phase.
func (m Motion) Airtime() int {
	if m.State != Airborne {
		return 0
	}
	return m.Ticks - m.JumpStart
}

// stationary reports whether no motion at all is pending.
func (m Motion) stationary() bool {
	return m.Speed == 0 && m.Frac == 0 && m.Corr == 0
}

// Actor integrates the jumping character's vertical motion with an 8-bit
// fractional accumulator.
type Actor struct {
	m           Motion
	phys        config.PhysicsConfig
	jump        config.JumpTable
	assistFloor int
	log         *log.Logger
}

// NewActor creates a grounded actor at the configured spawn point.
func NewActor(cfg *config.JumperConfig, logger *log.Logger) *Actor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &Actor{
		phys: cfg.Physics,
		jump: cfg.Jump,
		log:  logger,
	}
	weakest := math.MaxInt
	for _, v := range cfg.Jump.RiseAccel {
		weakest = min(weakest, v)
	}
	a.assistFloor = int(float64(weakest) * cfg.Jump.HoldAssistFloorRatio)
	a.Reset(cfg.Player)
	return a
}

// Reset puts the actor back at the spawn point, grounded and at rest.
func (a *Actor) Reset(p config.PlayerConfig) {
	a.m = Motion{X: p.X, Y: p.Y, W: p.Width, H: p.Height, PrevY: p.Y, OriginY: p.Y}
}

// Motion returns a copy of the actor's state.
func (a *Actor) Motion() Motion {
	return a.m
}

// Grounded reports whether the actor stands on a platform.
func (a *Actor) Grounded() bool {
	return a.m.State == Grounded
}

// BucketFor maps a grounded hold duration to a jump strength bucket.
func (a *Actor) BucketFor(holdFrames int) int {
	b := 0
	for i, th := range a.jump.HoldThresholds {
		if holdFrames >= th {
			b = i + 1
		}
	}
	return min(b, a.jump.Buckets()-1)
}

// RequestJump launches the actor with a strength chosen from how long the
// input has been held on the ground.
func (a *Actor) RequestJump() error {
	if a.m.State != Grounded {
		a.log.Debug("jump rejected", "reason", "airborne", "airtime", a.m.Airtime())
		return ErrNotGrounded
	}
	b := a.BucketFor(a.m.HoldFrames)
	a.launch(b)
	a.log.Debug("jump", "bucket", b, "hold", a.m.HoldFrames, "y", a.m.Y)
	return nil
}

func (a *Actor) launch(bucket int) {
	j := a.jump
	m := &a.m
	m.Bucket = bucket
	m.Speed = j.InitialSpeed[bucket]
	m.Accel = j.RiseAccel[bucket]
	m.AccelFall = j.FallAccel[bucket]
	m.Frac = j.AccelSeed[bucket]
	m.Corr = 0
	m.State = Airborne
	m.JumpStart = m.Ticks
	m.OriginY = m.Y
	m.HoldFrames = 0
}

// Tick advances the actor by one tick with the given input state.
func (a *Actor) Tick(held bool) {
	m := &a.m
	m.Ticks++
	m.Guarded = false
	m.PrevY = m.Y
	m.Held = held

	if m.State == Grounded {
		if held {
			m.HoldFrames++
		} else {
			m.HoldFrames = 0
		}
		m.PrevHeld = held
		return
	}

	airtime := m.Ticks - m.JumpStart

	if airtime <= a.jump.HoldAssistFrames && m.Speed < 0 && held {
		m.Accel = max(m.Accel-a.jump.HoldAssistDecrement, a.assistFloor)
	}

	switch {
	case m.Speed >= 0:
		m.Accel = m.AccelFall
	case !held && m.PrevHeld:
		m.Accel = m.AccelFall
	case m.OriginY-m.Y >= a.phys.AscentCap:
		m.Accel = m.AccelFall
	}

	carry := 0
	m.Corr += m.Frac
	if m.Corr >= subpixel {
		m.Corr -= subpixel
		carry = 1
	}
	m.Y += float64(m.Speed + carry)
	m.Frac += m.Accel
	for m.Frac >= subpixel {
		m.Frac -= subpixel
		m.Speed++
	}

	if m.Speed >= a.phys.MaxFallSpeed {
		m.Speed = a.phys.MaxFallSpeed
		m.Frac = 0
	}

	if math.Abs(m.Y-m.PrevY) < a.phys.StallEpsilon && m.Speed >= 0 {
		m.Y++
		m.Speed = max(m.Speed, 1)
		m.Guarded = true
		a.log.Debug("stall nudge", "y", m.Y, "airtime", airtime)
	}

	if airtime > a.phys.AirtimeCap && m.Speed < a.phys.MinDescentSpeed {
		m.Speed = a.phys.MinDescentSpeed
		m.Guarded = true
	}

	m.PrevHeld = held
}

// land snaps the actor onto a platform top and zeroes all motion.
func (a *Actor) land(top float64) {
	m := &a.m
	m.Y = top - m.H/2
	m.Speed = 0
	m.Frac = 0
	m.Corr = 0
	m.State = Grounded
}

// leaveGround starts a fall after the footing disappeared.
func (a *Actor) leaveGround() {
	m := &a.m
	m.State = Airborne
	m.JumpStart = m.Ticks
	m.OriginY = m.Y
	if m.AccelFall == 0 {
		m.AccelFall = a.jump.FallAccel[0]
	}
	m.Accel = m.AccelFall
	m.Speed = max(m.Speed, a.phys.LeaveSpeed)
}

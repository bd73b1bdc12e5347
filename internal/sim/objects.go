package sim

// Concrete object kinds backing the registry in the game binary and tests.
// Each kind embeds baseObject and layers on the capabilities it supports.

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colonygo/server/internal/object"
)

type baseObject struct {
	id      uint32
	objType object.ObjectType
	team    int
	pos     mgl32.Vec3
	rotY    float32
	active  bool
	proxy   bool
	caps    uint32
}

func newBase(p object.CreateParams, caps ...object.Capability) baseObject {
	b := baseObject{
		id:      uint32(p.ID),
		objType: p.Type,
		team:    p.Team,
		pos:     p.Pos,
		rotY:    p.Angle,
		active:  true,
	}
	for _, c := range caps {
		b.caps |= 1 << uint(c)
	}
	return b
}

func (o *baseObject) ID() uint32                    { return o.id }
func (o *baseObject) Type() object.ObjectType       { return o.objType }
func (o *baseObject) Team() int                     { return o.team }
func (o *baseObject) Position() mgl32.Vec3          { return o.pos }
func (o *baseObject) RotationY() float32            { return o.rotY }
func (o *baseObject) Active() bool                  { return o.active }
func (o *baseObject) ProxyActivate() bool           { return o.proxy }
func (o *baseObject) SetPosition(pos mgl32.Vec3)    { o.pos = pos }
func (o *baseObject) SetRotationY(a float32)        { o.rotY = a }
func (o *baseObject) SetActive(v bool)              { o.active = v }
func (o *baseObject) SetProxyActivate(v bool)       { o.proxy = v }

func (o *baseObject) Implements(c object.Capability) bool {
	return o.caps&(1<<uint(c)) != 0
}

// Physics is a minimal ground/air state for movable objects.
type Physics struct {
	grounded bool
}

// Land reports whether the body touches the ground.
func (p *Physics) Land() bool { return p.grounded }

// SetLand flips the ground contact state.
func (p *Physics) SetLand(v bool) { p.grounded = v }

// Bot is a controllable machine. Winged bots carry flight physics; all bots
// support the pre-delete hook and explosive destruction.
type Bot struct {
	baseObject
	Trainer bool
	Toy     bool
	Power   float32

	physics   *Physics
	destroyed bool
	deletions []bool // recorded OnDelete calls (bulk flag per call)
}

func (b *Bot) Physics() object.Physics {
	if b.physics == nil {
		return nil
	}
	return b.physics
}

// OnDelete records the pre-delete notification.
func (b *Bot) OnDelete(all bool) {
	b.deletions = append(b.deletions, all)
}

// Explode destroys the bot in place.
func (b *Bot) Explode(kind object.ExplosionKind, force float32) {
	_ = kind
	_ = force
	b.destroyed = true
	b.active = false
}

// Destroyed reports whether the bot has been blown up.
func (b *Bot) Destroyed() bool { return b.destroyed }

// DeleteNotifications returns the recorded pre-delete hook calls.
func (b *Bot) DeleteNotifications() []bool { return b.deletions }

// Body returns the bot's mutable physics state, nil for bots without one.
func (b *Bot) Body() *Physics { return b.physics }

// Building is a fixed structure. Buildings have no physics body, so flight
// filters never exclude them.
type Building struct {
	baseObject
	destroyed bool
}

func (b *Building) OnDelete(all bool) { _ = all }

func (b *Building) Explode(kind object.ExplosionKind, force float32) {
	_ = kind
	_ = force
	b.destroyed = true
	b.active = false
}

// Destroyed reports whether the building has been blown up.
func (b *Building) Destroyed() bool { return b.destroyed }

// Resource is a transportable item (titanium, power cells, uranium).
type Resource struct {
	baseObject
	transporter object.Object
}

// Transporter returns the carrying object, nil while on the ground.
func (r *Resource) Transporter() object.Object { return r.transporter }

// SetTransporter marks the resource as carried (nil to drop it).
func (r *Resource) SetTransporter(t object.Object) { r.transporter = t }

// Decoration is a passive object: ruins, scrap, barriers, placeholders.
type Decoration struct {
	baseObject
}

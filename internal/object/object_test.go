package object

// Test doubles shared by the registry, radar and team tests. fakeFactory
// builds fakeObjects straight from the creation params; tests then tweak
// the returned instance (team, physics, transporter) as the scenario needs.

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

type fakePhysics struct {
	grounded bool
}

func (p *fakePhysics) Land() bool { return p.grounded }

type fakeObject struct {
	id      uint32
	objType ObjectType
	team    int
	pos     mgl32.Vec3
	rotY    float32
	active  bool
	proxy   bool
	caps    map[Capability]bool

	transporter Object
	physics     *fakePhysics

	deletions []bool
	exploded  int
	onExplode func()
}

func (o *fakeObject) ID() uint32          { return o.id }
func (o *fakeObject) Type() ObjectType    { return o.objType }
func (o *fakeObject) Team() int           { return o.team }
func (o *fakeObject) Position() mgl32.Vec3 { return o.pos }
func (o *fakeObject) RotationY() float32  { return o.rotY }
func (o *fakeObject) Active() bool        { return o.active }
func (o *fakeObject) ProxyActivate() bool { return o.proxy }

func (o *fakeObject) Implements(c Capability) bool { return o.caps[c] }

func (o *fakeObject) Transporter() Object { return o.transporter }

func (o *fakeObject) Physics() Physics {
	if o.physics == nil {
		return nil
	}
	return o.physics
}

func (o *fakeObject) OnDelete(all bool) {
	o.deletions = append(o.deletions, all)
}

func (o *fakeObject) Explode(kind ExplosionKind, force float32) {
	_ = kind
	_ = force
	o.exploded++
	if o.onExplode != nil {
		o.onExplode()
	}
}

type fakeFactory struct {
	failing bool
	built   []*fakeObject
}

func (f *fakeFactory) CreateObject(p CreateParams) (Object, error) {
	if f.failing {
		return nil, errors.New("out of blueprints")
	}
	obj := &fakeObject{
		id:      uint32(p.ID),
		objType: p.Type,
		team:    p.Team,
		pos:     p.Pos,
		rotY:    p.Angle,
		active:  true,
		caps:    make(map[Capability]bool),
	}
	f.built = append(f.built, obj)
	return obj, nil
}

func newTestManager() (*Manager, *fakeFactory) {
	f := &fakeFactory{}
	// unit scale 1 keeps test distances literal
	return NewManager(f, 1, nil), f
}

// spawn creates one object of the given type at pos and returns the fake.
func spawn(m *Manager, t ObjectType, pos mgl32.Vec3) *fakeObject {
	params := NewCreateParams(t)
	params.Pos = pos
	obj, err := m.CreateObject(params)
	if err != nil {
		panic(err)
	}
	return obj.(*fakeObject)
}

// spawnTeam is spawn with a team id.
func spawnTeam(m *Manager, t ObjectType, pos mgl32.Vec3, team int) *fakeObject {
	params := NewCreateParams(t)
	params.Pos = pos
	params.Team = team
	obj, err := m.CreateObject(params)
	if err != nil {
		panic(err)
	}
	return obj.(*fakeObject)
}

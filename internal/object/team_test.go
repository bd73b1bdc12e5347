package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetObjectsOfTeam(t *testing.T) {
	m, _ := newTestManager()

	a := spawnTeam(m, TypeBotWheeled, mgl32.Vec3{}, 1)
	spawnTeam(m, TypeAlienAnt, mgl32.Vec3{}, 2)
	b := spawnTeam(m, TypeBase, mgl32.Vec3{}, 1)

	got := m.GetObjectsOfTeam(1)
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])

	assert.Empty(t, m.GetObjectsOfTeam(5))
}

func TestGetObjectsOfTeamIncludesInactive(t *testing.T) {
	m, _ := newTestManager()

	dormant := spawnTeam(m, TypeBotWheeled, mgl32.Vec3{}, 1)
	dormant.active = false

	got := m.GetObjectsOfTeam(1)
	require.Len(t, got, 1)
	assert.Same(t, dormant, got[0])
}

func TestTeamExists(t *testing.T) {
	m, _ := newTestManager()

	// the neutral pseudo-team exists even in an empty world
	assert.True(t, m.TeamExists(0))
	assert.False(t, m.TeamExists(1))

	member := spawnTeam(m, TypeBotWheeled, mgl32.Vec3{}, 1)
	assert.True(t, m.TeamExists(1))

	member.active = false
	assert.False(t, m.TeamExists(1), "inactive members do not keep a team alive")

	m.DeleteObject(member)
	assert.True(t, m.TeamExists(0))
}

func TestDestroyTeam(t *testing.T) {
	m, _ := newTestManager()

	a := spawnTeam(m, TypeBotWheeled, mgl32.Vec3{}, 2)
	b := spawnTeam(m, TypeBase, mgl32.Vec3{}, 2)
	bystander := spawnTeam(m, TypeBotWheeled, mgl32.Vec3{}, 1)

	m.DestroyTeam(2)

	assert.Equal(t, 1, a.exploded)
	assert.Equal(t, 1, b.exploded)
	assert.Equal(t, 0, bystander.exploded)
}

func TestDestroyTeamNeutralPanics(t *testing.T) {
	m, _ := newTestManager()
	assert.Panics(t, func() { m.DestroyTeam(0) })
}

func TestDestroyTeamSurvivesReentrantDeletes(t *testing.T) {
	m, _ := newTestManager()

	a := spawnTeam(m, TypeBotWheeled, mgl32.Vec3{}, 2)
	b := spawnTeam(m, TypeBotWheeled, mgl32.Vec3{}, 2)

	// explosion handlers removing their own object must not skip members
	a.onExplode = func() { m.DeleteObject(a) }
	b.onExplode = func() { m.DeleteObject(b) }

	m.DestroyTeam(2)

	assert.Equal(t, 1, a.exploded)
	assert.Equal(t, 1, b.exploded)
	assert.Nil(t, m.GetObjectByID(a.ID()))
	assert.Nil(t, m.GetObjectByID(b.ID()))
}

func TestCountObjectsImplementing(t *testing.T) {
	m, _ := newTestManager()

	flyer := spawn(m, TypeBotWinged, mgl32.Vec3{})
	flyer.caps[CapFlying] = true
	flyer.caps[CapMovable] = true

	rover := spawn(m, TypeBotWheeled, mgl32.Vec3{})
	rover.caps[CapMovable] = true

	spawn(m, TypeTitanium, mgl32.Vec3{})

	assert.Equal(t, 2, m.CountObjectsImplementing(CapMovable))
	assert.Equal(t, 1, m.CountObjectsImplementing(CapFlying))
	assert.Equal(t, 0, m.CountObjectsImplementing(CapControllable))
}

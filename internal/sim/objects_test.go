package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonygo/server/internal/object"
)

func TestBotExplodeDeactivates(t *testing.T) {
	bot := build(t, object.TypeBotWheeled).(*Bot)
	require.True(t, bot.Active())

	bot.Explode(object.ExplosionBang, 1.0)

	assert.True(t, bot.Destroyed())
	assert.False(t, bot.Active())
}

func TestBotRecordsDeleteNotifications(t *testing.T) {
	bot := build(t, object.TypeBotWheeled).(*Bot)

	bot.OnDelete(false)
	bot.OnDelete(true)

	assert.Equal(t, []bool{false, true}, bot.DeleteNotifications())
}

func TestBuildingHasNoPhysics(t *testing.T) {
	bld := build(t, object.TypeDerrick).(*Building)

	// flight filters treat bodies without physics as a pass-through
	_, movable := object.Object(bld).(object.Movable)
	assert.False(t, movable)
}

func TestResourceTransport(t *testing.T) {
	res := build(t, object.TypeTitanium).(*Resource)
	carrier := build(t, object.TypeBotTracked)

	assert.False(t, object.IsBeingTransported(res))

	res.SetTransporter(carrier)
	assert.True(t, object.IsBeingTransported(res))
	assert.Same(t, carrier, res.Transporter())

	res.SetTransporter(nil)
	assert.False(t, object.IsBeingTransported(res))
}

func TestBaseObjectSetters(t *testing.T) {
	bot := build(t, object.TypeBotWheeled).(*Bot)

	bot.SetPosition(mgl32.Vec3{1, 2, 3})
	bot.SetRotationY(1.5)
	bot.SetActive(false)
	bot.SetProxyActivate(true)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, bot.Position())
	assert.InDelta(t, 1.5, bot.RotationY(), 1e-6)
	assert.False(t, bot.Active())
	assert.True(t, bot.ProxyActivate())
}

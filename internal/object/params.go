package object

import "github.com/go-gl/mathgl/mgl32"

// CreateParams carries everything the creation service needs to build one
// object. ID < 0 asks the registry to assign the next id.
type CreateParams struct {
	Pos     mgl32.Vec3
	Angle   float32
	Type    ObjectType
	Power   float32
	Zoom    float32
	Height  float32
	Trainer bool
	Toy     bool
	Option  int
	Team    int
	ID      int64
}

// NewCreateParams returns params for the given type with the usual
// defaults: auto-assigned id and unit zoom.
func NewCreateParams(t ObjectType) CreateParams {
	return CreateParams{
		Type: t,
		Zoom: 1,
		ID:   -1,
	}
}

// Factory is the external object-creation service. A nil object or a
// non-nil error both count as creation failure; the registry wraps either
// in a *CreationError.
type Factory interface {
	CreateObject(params CreateParams) (Object, error)
}

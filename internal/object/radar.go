package object

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/colonygo/server/internal/geom"
)

// FlightState restricts the scan to grounded or airborne candidates.
// Objects without a physics body match either state.
type FlightState int

const (
	FlightAny FlightState = iota
	FlightGrounded
	FlightAirborne
)

// AllianceSet selects candidates by their relation to the reference
// object's team. The zero set matches everyone; alliance classification
// needs a reference object and is skipped without one.
type AllianceSet uint8

const (
	AllianceFriendly AllianceSet = 1 << iota
	AllianceEnemy
	AllianceNeutral
)

func (s AllianceSet) has(a AllianceSet) bool { return s&a != 0 }

// RadarFilter holds the optional radar predicates. The zero value filters
// nothing. Team 0 means any team.
type RadarFilter struct {
	Team     int
	Flight   FlightState
	Alliance AllianceSet
}

// sentinel starting score when seeking the nearest candidate
const radarBestInit = 100000.0

// Radar runs the composite spatial query from ref's own position and
// heading (normalized to [0, 2π)); a nil ref scans from the world origin
// with zero heading. See RadarAt for the parameter semantics.
func (m *Manager) Radar(ref Object, types []ObjectType, angle, focus, minDist, maxDist float32, furthest bool, filter RadarFilter, normalizeTypes bool) Object {
	var pos mgl32.Vec3
	var heading float32
	if ref != nil {
		pos = ref.Position()
		heading = geom.NormAngle(ref.RotationY())
	}
	return m.RadarAt(ref, pos, heading, types, angle, focus, minDist, maxDist, furthest, filter, normalizeTypes)
}

// RadarAt scans every registry entry and returns the best match, or nil.
//
// types restricts candidates to the listed kinds; an empty list means any
// type except TypeDummy and TypeController, which must be asked for by
// name. angle offsets the scan direction from heading; focus is the full
// field-of-view width, and focus >= 2π disables the bearing test entirely.
// minDist and maxDist bound the planar distance, both scaled by the world
// unit factor. furthest flips the selection from nearest to furthest; ties
// go to the first candidate in id order. normalizeTypes collapses cosmetic
// subtype variants before the type test.
func (m *Manager) RadarAt(ref Object, pos mgl32.Vec3, heading float32, types []ObjectType, angle, focus, minDist, maxDist float32, furthest bool, filter RadarFilter, normalizeTypes bool) Object {
	minDist *= m.unit
	maxDist *= m.unit

	scanAngle := geom.NormAngle(heading + angle)

	best := float32(radarBestInit)
	if furthest {
		best = 0
	}
	var pBest Object

	for _, id := range m.ids {
		obj := m.objects[id]
		if obj == nil || obj == ref {
			continue
		}
		if IsBeingTransported(obj) {
			continue
		}
		if !obj.Active() {
			continue
		}
		if obj.ProxyActivate() {
			continue
		}

		oType := obj.Type()
		if normalizeTypes {
			oType = NormalizeRadarType(oType)
		}

		if len(types) > 0 && !containsType(types, oType) {
			continue
		}
		// Dummy and controller objects only match when explicitly requested.
		if len(types) == 0 && (oType == TypeDummy || oType == TypeController) {
			continue
		}

		if filter.Flight != FlightAny {
			if mv, ok := obj.(Movable); ok {
				if p := mv.Physics(); p != nil {
					if filter.Flight == FlightGrounded && !p.Land() {
						continue
					}
					if filter.Flight == FlightAirborne && p.Land() {
						continue
					}
				}
			}
		}

		if filter.Team != 0 && obj.Team() != filter.Team {
			continue
		}

		if ref != nil && filter.Alliance != 0 {
			var rel AllianceSet
			switch {
			case obj.Team() == 0:
				rel = AllianceNeutral
			case obj.Team() == ref.Team():
				rel = AllianceFriendly
			default:
				rel = AllianceEnemy
			}
			if !filter.Alliance.has(rel) {
				continue
			}
		}

		oPos := obj.Position()
		d := geom.DistanceProjected(pos, oPos)
		if d < minDist || d > maxDist {
			continue
		}

		// Bearing is clockwise when viewed from above (hence the flipped Z).
		a := geom.RotateAngle(oPos.X()-pos.X(), pos.Z()-oPos.Z())
		if geom.TestAngle(a, scanAngle-focus/2, scanAngle+focus/2) || focus >= geom.TwoPi {
			if (!furthest && d < best) || (furthest && d > best) {
				best = d
				pBest = obj
			}
		}
	}

	return pBest
}

// FindNearest returns the closest matching object within maxDist, scanning
// a full circle with no filter.
func (m *Manager) FindNearest(ref Object, types []ObjectType, maxDist float32, normalizeTypes bool) Object {
	return m.Radar(ref, types, 0, geom.TwoPi, 0, maxDist, false, RadarFilter{}, normalizeTypes)
}

// FindNearestAt is FindNearest from an explicit position.
func (m *Manager) FindNearestAt(ref Object, pos mgl32.Vec3, types []ObjectType, maxDist float32, normalizeTypes bool) Object {
	return m.RadarAt(ref, pos, 0, types, 0, geom.TwoPi, 0, maxDist, false, RadarFilter{}, normalizeTypes)
}

func containsType(types []ObjectType, t ObjectType) bool {
	for _, c := range types {
		if c == t {
			return true
		}
	}
	return false
}

package object

import "go.uber.org/zap"

// GetObjectsOfTeam returns every live object on the given team, in registry
// (id) order. No activity filter is applied.
func (m *Manager) GetObjectsOfTeam(team int) []Object {
	var result []Object
	for _, obj := range m.Objects() {
		if obj.Team() == team {
			result = append(result, obj)
		}
	}
	return result
}

// TeamExists reports whether a team is present in the world. Team 0 (the
// neutral pseudo-team) always exists; any other team exists while at least
// one active object belongs to it.
func (m *Manager) TeamExists(team int) bool {
	if team == 0 {
		return true
	}
	for _, obj := range m.Objects() {
		if !obj.Active() {
			continue
		}
		if obj.Team() == team {
			return true
		}
	}
	return false
}

// DestroyTeam blows up every live object on the given team with a standard
// bang at full intensity, regardless of type or state. Destroying team 0 is
// a caller bug and panics. The member list is snapshotted first so
// explosion callbacks may delete objects without disturbing the sweep.
func (m *Manager) DestroyTeam(team int) {
	if team == 0 {
		panic("object: DestroyTeam called for neutral team 0")
	}

	victims := m.GetObjectsOfTeam(team)
	for _, obj := range victims {
		if ex, ok := obj.(Damageable); ok {
			ex.Explode(ExplosionBang, 1.0)
		}
	}
	m.log.Info("team destroyed", zap.Int("team", team), zap.Int("objects", len(victims)))
}

// CountObjectsImplementing counts live objects advertising the given
// capability.
func (m *Manager) CountObjectsImplementing(cap Capability) int {
	count := 0
	for _, obj := range m.Objects() {
		if obj.Implements(cap) {
			count++
		}
	}
	return count
}

package object

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// DefaultUnitScale converts script-facing radar distances to world units.
const DefaultUnitScale = 4.0

// Manager owns every live object instance, keyed by unique id. Deletion is
// deferred: a removed entry keeps its key with an emptied slot until a
// cleanup pass compacts it. Iteration follows ascending id order.
// Single-goroutine access only (game loop), so no locks. The registry must
// not be mutated while a radar scan or team enumeration is running.
type Manager struct {
	factory Factory
	log     *zap.Logger
	unit    float32

	objects map[uint32]Object // emptied slot = key present, nil value
	ids     []uint32          // ascending, mirrors objects including emptied slots

	nextID      uint32
	shouldClean bool
}

// NewManager creates an empty registry around the given creation service.
// unit <= 0 selects DefaultUnitScale.
func NewManager(factory Factory, unit float32, log *zap.Logger) *Manager {
	if unit <= 0 {
		unit = DefaultUnitScale
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		factory: factory,
		log:     log,
		unit:    unit,
		objects: make(map[uint32]Object),
	}
}

// CreateObject builds a new object through the creation service and takes
// ownership of it. params.ID < 0 assigns the next auto id; an explicit id
// that collides with an existing entry (live or awaiting compaction) is a
// caller bug and panics. Factory failure is returned as a *CreationError.
func (m *Manager) CreateObject(params CreateParams) (Object, error) {
	if params.ID < 0 {
		params.ID = int64(m.nextID)
		m.nextID++
	}
	id := uint32(params.ID)
	if _, exists := m.objects[id]; exists {
		panic(fmt.Sprintf("object: duplicate id %d in CreateObject", id))
	}

	obj, err := m.factory.CreateObject(params)
	if err != nil || obj == nil {
		return nil, &CreationError{Type: params.Type, Err: err}
	}

	m.objects[id] = obj
	m.insertID(id)
	m.log.Debug("object created",
		zap.Uint32("id", id),
		zap.Stringer("type", params.Type),
		zap.Int("team", params.Team))
	return obj, nil
}

// DeleteObject releases ownership of an object: the slot is emptied but the
// key stays until CleanRemovedObjects runs. Objects supporting the
// destruction hook are notified first. Returns whether the id was
// registered. A nil instance is a caller bug and panics.
func (m *Manager) DeleteObject(obj Object) bool {
	if obj == nil {
		panic("object: DeleteObject called with nil instance")
	}

	if d, ok := obj.(Destroyable); ok {
		d.OnDelete(false)
	}

	id := obj.ID()
	if _, ok := m.objects[id]; ok {
		m.objects[id] = nil
		m.shouldClean = true
		return true
	}
	return false
}

// NeedsCleanup reports whether a soft-delete happened since the last
// cleanup pass.
func (m *Manager) NeedsCleanup() bool { return m.shouldClean }

// CleanRemovedObjects compacts at most the first emptied slot in id order
// and clears the pending flag unconditionally. Callers relying on a full
// sweep must invoke it once per emptied slot.
func (m *Manager) CleanRemovedObjects() {
	if len(m.ids) > 0 {
		head := m.ids[0]
		if m.objects[head] == nil {
			delete(m.objects, head)
			m.ids = m.ids[1:]
		}
	}
	m.shouldClean = false
}

// DeleteAllObjects notifies every live instance via the destruction hook
// (bulk variant), clears the registry and restarts id assignment at 0.
func (m *Manager) DeleteAllObjects() {
	for _, id := range m.ids {
		obj := m.objects[id]
		if obj == nil {
			continue
		}
		if d, ok := obj.(Destroyable); ok {
			d.OnDelete(true)
		}
	}

	m.objects = make(map[uint32]Object)
	m.ids = m.ids[:0]
	m.nextID = 0
	m.log.Info("all objects deleted")
}

// GetObjectByID returns the live object with the given id, or nil when the
// id is unknown or its slot has been emptied.
func (m *Manager) GetObjectByID(id uint32) Object {
	return m.objects[id]
}

// GetObjectByRank returns the rank-th entry in id order, or nil when rank
// is out of range. Rank counts entries, including emptied slots awaiting
// compaction, so a valid rank may still yield nil — a caller-visible
// consequence of deferred cleanup.
func (m *Manager) GetObjectByRank(rank int) Object {
	if rank < 0 || rank >= len(m.ids) {
		return nil
	}
	return m.objects[m.ids[rank]]
}

// Objects returns a snapshot of all live objects in ascending id order.
func (m *Manager) Objects() []Object {
	result := make([]Object, 0, len(m.ids))
	for _, id := range m.ids {
		if obj := m.objects[id]; obj != nil {
			result = append(result, obj)
		}
	}
	return result
}

// EntryCount returns the number of registry entries, including emptied
// slots not yet compacted.
func (m *Manager) EntryCount() int { return len(m.ids) }

// insertID keeps the id slice sorted ascending.
func (m *Manager) insertID(id uint32) {
	i := sort.Search(len(m.ids), func(i int) bool { return m.ids[i] >= id })
	m.ids = append(m.ids, 0)
	copy(m.ids[i+1:], m.ids[i:])
	m.ids[i] = id
}

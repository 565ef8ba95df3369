package ecs

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// initialCapacity sizes new stores; the demo only ever holds a handful of entities.
const initialCapacity = 16

// World is the central entity registry and component store.
// Components live in one intmap per ComponentType, keyed by EntityID.
type World struct {
	nextID     EntityID
	alive      *intmap.Set[EntityID]
	components map[ComponentType]*intmap.Map[EntityID, Component]
	commands   *Commands
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      intmap.NewSet[EntityID](initialCapacity),
		components: make(map[ComponentType]*intmap.Map[EntityID, Component]),
		commands:   &Commands{},
	}
}

// CreateEntity mints a new entity ID, marks it alive and attaches components.
func (w *World) CreateEntity(components ...Component) EntityID {
	id := w.nextID
	w.nextID++
	w.alive.Add(id)
	for _, c := range components {
		w.Add(id, c)
	}
	return id
}

// DestroyEntity marks the entity dead and removes all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive.Del(id) {
		return
	}
	for _, store := range w.components {
		store.Del(id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive.Has(id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.alive.Len()
}

// Add attaches a component to an entity, replacing any component of the same type.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	store := w.components[t]
	if store == nil {
		store = intmap.New[EntityID, Component](initialCapacity)
		w.components[t] = store
	}
	store.Put(id, c)
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	c, ok := store.Get(id)
	if !ok {
		return nil
	}
	return c
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		store.Del(id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	store := w.components[t]
	return store != nil && store.Has(id)
}

// Query returns all alive entities that have every listed component type,
// in ascending ID order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if w.storeLen(t) < w.storeLen(smallest) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	store.ForEach(func(id EntityID, _ Component) bool {
		if !w.alive.Has(id) {
			return true
		}
		for _, t := range types {
			if t != smallest && !w.Has(id, t) {
				return true
			}
		}
		result = append(result, id)
		return true
	})
	slices.Sort(result)
	return result
}

func (w *World) storeLen(t ComponentType) int {
	if store := w.components[t]; store != nil {
		return store.Len()
	}
	return 0
}

// Commands returns the deferred command queue flushed by Maintain.
func (w *World) Commands() *Commands {
	return w.commands
}

// Maintain applies every queued structural change. Call once per tick,
// after systems have run.
func (w *World) Maintain() {
	w.commands.flush(w)
}

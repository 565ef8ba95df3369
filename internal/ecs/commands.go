package ecs

// Commands buffers structural changes (spawns, destroys, component adds and
// removals) so systems can request them while iterating query results.
// The buffer is applied by World.Maintain.
type Commands struct {
	spawns   [][]Component
	destroys []EntityID
	adds     []addCommand
	removes  []removeCommand
}

type addCommand struct {
	id        EntityID
	component Component
}

type removeCommand struct {
	id EntityID
	t  ComponentType
}

// Spawn queues creation of an entity carrying the given components.
func (c *Commands) Spawn(components ...Component) {
	c.spawns = append(c.spawns, components)
}

// Destroy queues removal of an entity and all its components.
func (c *Commands) Destroy(id EntityID) {
	c.destroys = append(c.destroys, id)
}

// Add queues attaching a component to an existing entity.
func (c *Commands) Add(id EntityID, component Component) {
	c.adds = append(c.adds, addCommand{id: id, component: component})
}

// Remove queues detaching a component type from an entity.
func (c *Commands) Remove(id EntityID, t ComponentType) {
	c.removes = append(c.removes, removeCommand{id: id, t: t})
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.destroys) + len(c.adds) + len(c.removes)
}

// flush applies destroys, then removes, then adds, then spawns. Adds and
// removes targeting an entity destroyed in the same flush are dropped.
func (c *Commands) flush(w *World) {
	destroyed := make(map[EntityID]bool, len(c.destroys))
	for _, id := range c.destroys {
		w.DestroyEntity(id)
		destroyed[id] = true
	}
	for _, cmd := range c.removes {
		if !destroyed[cmd.id] {
			w.Remove(cmd.id, cmd.t)
		}
	}
	for _, cmd := range c.adds {
		if !destroyed[cmd.id] && w.Alive(cmd.id) {
			w.Add(cmd.id, cmd.component)
		}
	}
	for _, components := range c.spawns {
		w.CreateEntity(components...)
	}

	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
}

package world

// Registry is the ordered arena of placed rooms. Rooms are never removed
// individually; failed attempts roll back to a SavePoint.
type Registry struct {
	rooms []Room
}

// SavePoint captures the registry length and the door count of every room
// alive at that moment.
type SavePoint struct {
	length     int
	doorCounts []int
}

// Len returns the number of placed rooms.
func (r *Registry) Len() int {
	return len(r.rooms)
}

// At returns a pointer to the room at index i for in-place door updates.
func (r *Registry) At(i int) *Room {
	return &r.rooms[i]
}

// Append adds a room, assigning its ID from its position.
func (r *Registry) Append(room Room) *Room {
	room.ID = len(r.rooms)
	r.rooms = append(r.rooms, room)
	return &r.rooms[len(r.rooms)-1]
}

// Rooms returns deep copies of all rooms in creation order.
func (r *Registry) Rooms() []Room {
	out := make([]Room, len(r.rooms))
	for i := range r.rooms {
		out[i] = r.rooms[i].Clone()
	}
	return out
}

// Clear drops every room.
func (r *Registry) Clear() {
	r.rooms = r.rooms[:0]
}

// Save records the current state.
func (r *Registry) Save() SavePoint {
	counts := make([]int, len(r.rooms))
	for i := range r.rooms {
		counts[i] = len(r.rooms[i].Doors)
	}
	return SavePoint{length: len(r.rooms), doorCounts: counts}
}

// Rollback truncates to the saved length and drops doors appended to the
// surviving rooms since the save.
func (r *Registry) Rollback(sp SavePoint) {
	if sp.length < len(r.rooms) {
		clear(r.rooms[sp.length:])
		r.rooms = r.rooms[:sp.length]
	}
	for i := range r.rooms {
		if i < len(sp.doorCounts) && len(r.rooms[i].Doors) > sp.doorCounts[i] {
			r.rooms[i].Doors = r.rooms[i].Doors[:sp.doorCounts[i]]
		}
	}
}

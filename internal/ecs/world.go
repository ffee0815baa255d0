package ecs

import (
	"sort"

	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/physics"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World holds every controlled character and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Characters map[EntityID]*entity.Character

	// Reverse lookup for contact events
	byBody map[physics.BodyHandle]EntityID

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Characters: make(map[EntityID]*entity.Character),
		byBody:     make(map[physics.BodyHandle]EntityID),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// CreateCharacter creates a grounded, right-facing character bound to body.
// The first character created becomes the player.
func (w *World) CreateCharacter(body physics.BodyHandle, movement entity.Movement) EntityID {
	id := w.NewEntity()

	w.Characters[id] = entity.NewCharacter(id, body, movement)
	w.byBody[body] = id

	if w.PlayerID == 0 {
		w.PlayerID = id
	}
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	if c, ok := w.Characters[id]; ok {
		delete(w.byBody, c.Body)
	}
	delete(w.Characters, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Character returns the character for id, or nil
func (w *World) Character(id EntityID) *entity.Character {
	return w.Characters[id]
}

// Player returns the player character, or nil
func (w *World) Player() *entity.Character {
	return w.Characters[w.PlayerID]
}

// CharacterByBody returns the character that owns body
func (w *World) CharacterByBody(body physics.BodyHandle) (*entity.Character, bool) {
	id, ok := w.byBody[body]
	if !ok {
		return nil, false
	}
	c, ok := w.Characters[id]
	return c, ok
}

// Each calls fn for every character in ascending ID order
func (w *World) Each(fn func(c *entity.Character)) {
	ids := make([]EntityID, 0, len(w.Characters))
	for id := range w.Characters {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		fn(w.Characters[id])
	}
}

// Len returns the number of characters
func (w *World) Len() int {
	return len(w.Characters)
}

// CountAirborne returns the number of characters currently off the ground
func (w *World) CountAirborne() int {
	n := 0
	for _, c := range w.Characters {
		if c.IsAirborne() {
			n++
		}
	}
	return n
}

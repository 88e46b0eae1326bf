package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/ember"
)

// EffectData attaches a particle engine to an entity.
type EffectData struct {
	Engine *ember.Engine
	// RemoveOnFinish deletes the entity once the engine has stopped and its
	// last particle has died.
	RemoveOnFinish bool

	finished bool
}

// Effect is the Donburi component type for particle effects.
var Effect = donburi.NewComponentType[EffectData]()

// FinishedEvent is published once per effect when its engine stops and
// drains. Entity may already be removed when RemoveOnFinish was set.
type FinishedEvent struct {
	Entity donburi.Entity
	Engine *ember.Engine
}

// FinishedEventType carries FinishedEvent. Subscribe to it and call
// ProcessEvents after Update to react to finished effects.
var FinishedEventType = events.NewEventType[FinishedEvent]()

var effectQuery = donburi.NewQuery(filter.Contains(Effect))

// Spawn creates an entity carrying e.
func Spawn(world donburi.World, e *ember.Engine, removeOnFinish bool) donburi.Entity {
	entity := world.Create(Effect)
	donburi.SetValue(world.Entry(entity), Effect, EffectData{
		Engine:         e,
		RemoveOnFinish: removeOnFinish,
	})
	return entity
}

// Update ticks every effect in world by dt seconds, publishes a
// FinishedEvent for each one that drained during this call, and removes
// the finished entities that asked for it.
func Update(world donburi.World, dt float64) {
	var remove []donburi.Entity
	effectQuery.Each(world, func(entry *donburi.Entry) {
		fx := Effect.Get(entry)
		if fx.Engine == nil {
			return
		}
		fx.Engine.Tick(dt)
		if fx.finished || fx.Engine.IsActive() || fx.Engine.Count() > 0 {
			return
		}
		fx.finished = true
		FinishedEventType.Publish(world, FinishedEvent{Entity: entry.Entity(), Engine: fx.Engine})
		if fx.RemoveOnFinish {
			remove = append(remove, entry.Entity())
		}
	})
	for _, entity := range remove {
		world.Remove(entity)
	}
}

// Restart resets the engine of entity and clears its finished flag so a
// later drain publishes again.
func Restart(world donburi.World, entity donburi.Entity) {
	if !world.Valid(entity) {
		return
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(Effect) {
		return
	}
	fx := Effect.Get(entry)
	fx.finished = false
	if fx.Engine != nil {
		fx.Engine.Reset()
	}
}

// Package ecs runs ember particle engines inside a [Donburi] world.
//
// Attach an engine to an entity with [Spawn] and tick every effect from a
// system with [Update]. Effects that stop and drain publish a
// [FinishedEvent]; entities spawned with removeOnFinish are deleted at the
// same time.
//
// Usage:
//
//	e := ember.NewEngine()
//	e.ApplyPreset(ember.PresetExplosion)
//	e.SetPosition(x, y)
//	ecs.Spawn(world, e, true)
//
//	// each frame
//	ecs.Update(world, 1.0/60)
//	ecs.FinishedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/speeed/common"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeSensor
	collisionTypeTrigger
)

// World units are small (the player is half a unit wide), so the default
// Chipmunk slop of 0.1 would visibly sink bodies into the floor.
const collisionSlop = 0.01

type PhysicsSystem struct {
	space         *cp.Space
	dt            float64
	handlersReady bool

	// shapeOwners maps every body shape the system created to its entity.
	shapeOwners map[*cp.Shape]ecs.Entity
	sensors     map[ecs.Entity]*sensorInfo
	sensorShape map[*cp.Shape]*sensorInfo
	// triggers collected for the player during the current step
	triggerBegan map[ecs.Entity][]ecs.Entity
}

type sensorInfo struct {
	entity   ecs.Entity
	owner    ecs.Entity
	shape    *cp.Shape
	overlaps map[ecs.Entity]int
	began    []ecs.Entity
}

func NewPhysicsSystem(gravity float64, iterations int) *PhysicsSystem {
	space := cp.NewSpace()
	if iterations > 0 {
		space.Iterations = uint(iterations)
	}
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	space.SetCollisionSlop(collisionSlop)
	return &PhysicsSystem{
		space:        space,
		dt:           1.0 / common.TPS,
		shapeOwners:  make(map[*cp.Shape]ecs.Entity),
		sensors:      make(map[ecs.Entity]*sensorInfo),
		sensorShape:  make(map[*cp.Shape]*sensorInfo),
		triggerBegan: make(map[ecs.Entity][]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncSensors(w)
	ps.pushState(w)

	for _, s := range ps.sensors {
		s.began = s.began[:0]
	}
	clear(ps.triggerBegan)

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	sensorHandler := ps.space.NewCollisionHandler(collisionTypeSensor, collisionTypeSolid)
	sensorHandler.UserData = ps
	sensorHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		sensor, other := sys.sensorPair(arb)
		if sensor == nil {
			return true
		}
		owner, ok := sys.shapeOwners[other]
		if !ok {
			return true
		}
		sensor.overlaps[owner]++
		sensor.began = append(sensor.began, owner)
		return true
	}
	sensorHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		sensor, other := sys.sensorPair(arb)
		if sensor == nil {
			return
		}
		owner, ok := sys.shapeOwners[other]
		if !ok {
			return
		}
		if sensor.overlaps[owner] <= 1 {
			delete(sensor.overlaps, owner)
			return
		}
		sensor.overlaps[owner]--
	}

	triggerHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeTrigger)
	triggerHandler.UserData = ps
	triggerHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := sys.shapeOwners[shapeA]
		b, okB := sys.shapeOwners[shapeB]
		if !okA || !okB {
			return true
		}
		if shapeA.Sensor() {
			a, b = b, a
		}
		sys.triggerBegan[a] = append(sys.triggerBegan[a], b)
		return true
	}

	ps.handlersReady = true
}

// sensorPair returns the sensor side of an arbiter and the other shape.
func (ps *PhysicsSystem) sensorPair(arb *cp.Arbiter) (*sensorInfo, *cp.Shape) {
	shapeA, shapeB := arb.Shapes()
	if s, ok := ps.sensorShape[shapeA]; ok {
		return s, shapeB
	}
	if s, ok := ps.sensorShape[shapeB]; ok {
		return s, shapeA
	}
	return nil, nil
}

// ownsBody reports whether bodyComp carries a shape this system created for e.
func (ps *PhysicsSystem) ownsBody(e ecs.Entity, bodyComp *component.PhysicsBody) bool {
	if bodyComp == nil || bodyComp.Shape == nil {
		return false
	}
	owner, ok := ps.shapeOwners[bodyComp.Shape]
	return ok && owner == e
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if ps.ownsBody(e, bodyComp) {
			return
		}
		isPlayer := ecs.Has(w, e, component.PlayerComponent.Kind())
		body, shape := ps.createBody(transform, bodyComp, isPlayer)
		if shape == nil {
			return
		}
		ps.shapeOwners[shape] = e
		bodyComp.Body = body
		bodyComp.Shape = shape
	})
}

func (ps *PhysicsSystem) createBody(transform *component.Transform, bodyComp *component.PhysicsBody, isPlayer bool) (*cp.Body, *cp.Shape) {
	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	if radius <= 0 && (width <= 0 || (height <= 0 && !bodyComp.Segment)) {
		return nil, nil
	}
	center := cp.Vector{X: transform.X, Y: transform.Y}

	if bodyComp.Static {
		var shape *cp.Shape
		switch {
		case bodyComp.Segment:
			dx, dy := common.Rotate(width/2, 0, bodyComp.Angle)
			shape = cp.NewSegment(ps.space.StaticBody, center.Add(cp.Vector{X: -dx, Y: -dy}), center.Add(cp.Vector{X: dx, Y: dy}), 0)
		case radius > 0:
			shape = cp.NewCircle(ps.space.StaticBody, radius, center)
		default:
			bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		ps.configureShape(shape, bodyComp, isPlayer)
		ps.space.AddShape(shape)
		return ps.space.StaticBody, shape
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	// Infinite moment locks rotation.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(center)
	body.UserData = 1.0
	body.SetVelocityUpdateFunc(scaledVelocityUpdate)

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	ps.configureShape(shape, bodyComp, isPlayer)
	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return body, shape
}

// scaledVelocityUpdate integrates gravity multiplied by the scale pushState
// stores in the body's UserData.
func scaledVelocityUpdate(b *cp.Body, gravity cp.Vector, damping, dt float64) {
	scale, ok := b.UserData.(float64)
	if !ok {
		scale = 1
	}
	cp.BodyUpdateVelocity(b, gravity.Mult(scale), damping, dt)
}

func (ps *PhysicsSystem) configureShape(shape *cp.Shape, bodyComp *component.PhysicsBody, isPlayer bool) {
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	switch {
	case bodyComp.Trigger:
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeTrigger)
	case isPlayer:
		shape.SetCollisionType(collisionTypePlayer)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}
}

// syncSensors attaches sensor shapes to their owners' bodies once the owner
// has one.
func (ps *PhysicsSystem) syncSensors(w *ecs.World) {
	ecs.ForEach(w, component.SensorComponent.Kind(), func(e ecs.Entity, sensor *component.Sensor) {
		if _, ok := ps.sensors[e]; ok {
			return
		}
		owner := ecs.Entity(sensor.Owner)
		ownerBody, ok := ecs.Get(w, owner, component.PhysicsBodyComponent.Kind())
		if !ok || !ps.ownsBody(owner, ownerBody) || ownerBody.Static || sensor.Width <= 0 || sensor.Height <= 0 {
			return
		}
		bb := cp.BB{
			L: sensor.OffsetX - sensor.Width/2,
			B: sensor.OffsetY - sensor.Height/2,
			R: sensor.OffsetX + sensor.Width/2,
			T: sensor.OffsetY + sensor.Height/2,
		}
		shape := cp.NewBox2(ownerBody.Body, bb, 0)
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSensor)
		ps.space.AddShape(shape)

		info := &sensorInfo{
			entity:   e,
			owner:    owner,
			shape:    shape,
			overlaps: make(map[ecs.Entity]int),
		}
		ps.sensors[e] = info
		ps.sensorShape[shape] = info
	})
}

// pushState copies gameplay writes (velocity, friction, gravity scale and
// teleports) into the bodies before stepping.
func (ps *PhysicsSystem) pushState(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, t *component.Transform) {
		if bodyComp.Static || !ps.ownsBody(e, bodyComp) {
			return
		}
		body := bodyComp.Body
		bodyComp.Shape.SetFriction(bodyComp.Friction)

		scale := 1.0
		if g, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			scale = g.Scale
		}
		body.UserData = scale

		pos := body.Position()
		if math.Abs(pos.X-t.X) > 1e-9 || math.Abs(pos.Y-t.Y) > 1e-9 {
			body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			body.SetVelocity(v.X, v.Y)
		}
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, t *component.Transform) {
		if bodyComp.Static || !ps.ownsBody(e, bodyComp) {
			return
		}
		pos := bodyComp.Body.Position()
		t.X, t.Y = pos.X, pos.Y
		t.Rotation = bodyComp.Body.Angle()
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel := bodyComp.Body.Velocity()
			v.X, v.Y = vel.X, vel.Y
		}
	})
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for e, info := range ps.sensors {
		sensor, ok := ecs.Get(w, e, component.SensorComponent.Kind())
		if !ok {
			continue
		}
		sensor.Overlaps = make(map[uint64]struct{}, len(info.overlaps))
		for other := range info.overlaps {
			sensor.Overlaps[uint64(other)] = struct{}{}
		}
		sensor.Began = sensor.Began[:0]
		for _, other := range info.began {
			sensor.Began = append(sensor.Began, uint64(other))
		}
	}

	ecs.ForEach(w, component.BodyContactsComponent.Kind(), func(e ecs.Entity, contacts *component.BodyContacts) {
		contacts.Began = contacts.Began[:0]
		for _, other := range ps.triggerBegan[e] {
			contacts.Began = append(contacts.Began, uint64(other))
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	live := make(map[ecs.Entity]struct{}, len(ps.shapeOwners))
	for shape, e := range ps.shapeOwners {
		if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && bodyComp.Shape == shape {
			live[e] = struct{}{}
			continue
		}
		body := shape.Body()
		ps.removeShape(shape)
		delete(ps.shapeOwners, shape)
		if body != nil && body != ps.space.StaticBody && ps.space.ContainsBody(body) {
			// Sensors ride on the body and must leave the space with it.
			for sensorEnt, s := range ps.sensors {
				if s.owner == e {
					ps.removeSensor(sensorEnt, s)
				}
			}
			ps.space.RemoveBody(body)
		}
	}

	for e, s := range ps.sensors {
		_, ownerLive := live[s.owner]
		if ownerLive && ecs.Has(w, e, component.SensorComponent.Kind()) {
			continue
		}
		ps.removeSensor(e, s)
	}

	// Overlaps may still name bodies that no longer exist.
	for _, s := range ps.sensors {
		for other := range s.overlaps {
			if _, ok := live[other]; !ok {
				delete(s.overlaps, other)
			}
		}
	}
}

func (ps *PhysicsSystem) removeSensor(e ecs.Entity, s *sensorInfo) {
	ps.removeShape(s.shape)
	delete(ps.sensorShape, s.shape)
	delete(ps.sensors, e)
}

func (ps *PhysicsSystem) removeShape(shape *cp.Shape) {
	if shape == nil || !ps.space.ContainsShape(shape) {
		return
	}
	ps.space.RemoveShape(shape)
}

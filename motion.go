package grove

// seekStep returns the offset that moves pos toward target for one frame.
// The step is (target-pos)*speed*dt, limited so it never passes the target.
func seekStep(pos, target Vec2, speed, dt float64) Vec2 {
	accel := target.Sub(pos)
	step := accel.Scale(speed * dt)
	if step.Len2() > accel.Len2() {
		step = accel
	}
	return step
}

// SetDestination sets the file's normalized direction from its parent anchor.
func (f *File) SetDestination(d Vec2) {
	f.dest = d
}

// Destination returns the file's direction from its parent anchor.
func (f *File) Destination() Vec2 {
	return f.dest
}

// SetDistance sets the scale applied to the destination direction.
func (f *File) SetDistance(d float64) {
	f.distance = d
}

// Distance returns the scale applied to the destination direction.
func (f *File) Distance() float64 {
	return f.distance
}

// Target returns the offset from the parent anchor the file is moving to.
func (f *File) Target() Vec2 {
	return f.dest.Scale(f.distance)
}

// Position returns the file's offset from its parent anchor.
func (f *File) Position() Vec2 {
	return f.pos
}

// SetPosition places the file at an offset from its parent anchor.
func (f *File) SetPosition(p Vec2) {
	f.pos = p
}

// Speed returns the step multiplier used when seeking the target.
func (f *File) Speed() float64 {
	return f.speed
}

// SetSpeed sets the step multiplier used when seeking the target.
func (f *File) SetSpeed(s float64) {
	f.speed = s
}

// AbsolutePosition returns the file position plus its parent anchor.
// Panics if the file has no parent container.
func (f *File) AbsolutePosition() Vec2 {
	f.mustHaveDir("AbsolutePosition")
	return f.pos.Add(f.dir.Position())
}

// move steps the file toward its target. Files carry no momentum: the
// acceleration is recomputed from scratch every frame.
func (f *File) move(dt float64) {
	f.pos = f.pos.Add(seekStep(f.pos, f.Target(), f.speed, dt))
}

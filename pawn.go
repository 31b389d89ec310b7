package grove

// spawnFadeTime is how long a newly shown entity takes to fade in.
const spawnFadeTime = 1.0

// Pawn is the on-screen entity state shared by tracked files: a local clock,
// visibility, selection, the name display timer and the spawn fade-in.
//
// The clock is per entity. Files compare their last action against it, so an
// entity whose clock is held at zero never ages.
type Pawn struct {
	elapsed float64

	hidden   bool
	selected bool

	nameTime     float64
	nameInterval float64

	alpha float64
	spawn *Fade
}

func (p *Pawn) initPawn(nameTime float64) {
	p.hidden = true
	p.nameTime = nameTime
	p.nameInterval = nameTime
	p.alpha = 1
}

// Elapsed returns the entity's local clock in seconds.
func (p *Pawn) Elapsed() float64 {
	return p.elapsed
}

// IsHidden reports whether the entity is hidden.
func (p *Pawn) IsHidden() bool {
	return p.hidden
}

// IsSelected reports whether the entity is selected.
func (p *Pawn) IsSelected() bool {
	return p.selected
}

// ShowName restarts the name display timer.
func (p *Pawn) ShowName() {
	p.nameInterval = p.nameTime
}

// setHidden updates the hidden flag. Becoming visible starts the fade-in.
func (p *Pawn) setHidden(hidden bool) {
	if p.hidden && !hidden {
		p.alpha = 0
		p.spawn = NewFade(&p.alpha, 1, spawnFadeTime, nil)
	}
	p.hidden = hidden
}

func (p *Pawn) setSelected(selected bool) {
	p.selected = selected
}

// logic advances the clock, the name timer and the fade-in by dt seconds.
func (p *Pawn) logic(dt float64) {
	p.elapsed += dt

	if p.nameInterval > 0 {
		p.nameInterval -= dt
	}

	if p.spawn != nil && !p.hidden {
		p.spawn.Update(float32(dt))
		if p.spawn.Done {
			p.spawn = nil
		}
	}
}

// baseAlpha is the entity alpha before any file-specific fading.
func (p *Pawn) baseAlpha() float64 {
	return p.alpha
}

// nameAlpha is the opacity of the entity's label.
func (p *Pawn) nameAlpha() float64 {
	if p.selected {
		return 1
	}
	return clamp01(p.nameInterval)
}

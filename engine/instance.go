package engine

// Instance is one grid cell's renderable state. Static fields are
// written in bulk by a layout rebuild and stay fixed until the next
// rebuild; the derived fields are rewritten every frame by the wave
// animator.
type Instance struct {
	// Static until the next rebuild
	BaseX       float64 // local unrotated frame, pixels
	BaseY       float64
	Row         int
	Col         int
	WorldColumn int // Col + accumulated column origin; brightness key
	BaseOpacity float64

	// Derived per frame
	Height  float64 // wave displacement, pixels
	Scale   float64 // depth projection factor, 1 = resting
	Opacity float64 // live opacity after wave/pulse modulation
}

// growFactor amortizes instance reallocation across rebuilds.
const growFactor = 1.25

// store is the capacity-managed instance table. The backing array
// only ever grows; a rebuild that needs fewer cells just lowers the
// active count.
type store struct {
	instances []Instance
	active    int
}

// grow ensures capacity for at least n instances. Existing contents
// are not preserved; the caller repopulates every active slot.
func (s *store) grow(n int) {
	if n <= len(s.instances) {
		return
	}
	next := int(float64(len(s.instances))*growFactor) + 1
	if next < n {
		next = n
	}
	s.instances = make([]Instance, next)
}

// release drops the active set without shrinking the allocation.
func (s *store) release() {
	s.active = 0
}

// view returns the active instances. The slice aliases the backing
// array and is only valid until the next rebuild.
func (s *store) view() []Instance {
	return s.instances[:s.active]
}

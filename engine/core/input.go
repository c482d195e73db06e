package core

// Input accumulates window events into a queryable snapshot. Pressed keys
// and scroll accumulate until the next update tick consumes them.
type Input struct {
	keys           map[Key]bool
	pressed        map[Key]bool
	mouseX, mouseY float64
	scrollY        float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}, pressed: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && !in.keys[e.Key] {
			in.pressed[e.Key] = true
		}
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventScroll:
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
func (in *Input) Scroll() float64           { return in.scrollY }

// WasPressed reports whether k went down since the last EndTick.
func (in *Input) WasPressed(k Key) bool { return in.pressed[k] }

// EndTick clears presses and scroll once an update tick has seen them.
// Frames that run no tick leave them pending.
func (in *Input) EndTick() {
	clear(in.pressed)
	in.scrollY = 0
}

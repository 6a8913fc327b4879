package ui

// TouchPhase identifies the stage of a touch gesture.
type TouchPhase int

const (
	// TouchStart begins a gesture at a settled contact point.
	TouchStart TouchPhase = iota
	// TouchMove continues a gesture while contact stays valid.
	TouchMove
	// TouchEnd finishes a gesture at the last known point.
	TouchEnd
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "start"
	case TouchMove:
		return "move"
	case TouchEnd:
		return "end"
	default:
		return "unknown"
	}
}

// TouchEvent is a classified pointer event at a device pixel position.
type TouchEvent struct {
	Phase TouchPhase
	Point Point
}

// KeyEvent is a logical key code, one per hardware switch line.
type KeyEvent uint8

// Logical key codes, in switch-line order.
const (
	KeyRight KeyEvent = iota
	KeyLeft
	KeyDown
	KeyUp
	KeySelect
)

func (k KeyEvent) String() string {
	switch k {
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeySelect:
		return "select"
	default:
		return "key?"
	}
}

// EncoderEvent is a signed rotary encoder detent delta.
type EncoderEvent int32

package input

// Signal is a named boolean "key is held" input
type Signal uint8

const (
	SignalUp Signal = iota
	SignalDown
	SignalLeft
	SignalRight
	SignalBoost
	SignalAbility

	signalCount
)

var signalNames = [signalCount]string{
	SignalUp:      "up",
	SignalDown:    "down",
	SignalLeft:    "left",
	SignalRight:   "right",
	SignalBoost:   "boost",
	SignalAbility: "ability",
}

func (s Signal) String() string {
	if s < signalCount {
		return signalNames[s]
	}
	return "unknown"
}

// Opposite returns the contrary direction of a movement signal
func Opposite(sig Signal) (Signal, bool) {
	switch sig {
	case SignalUp:
		return SignalDown, true
	case SignalDown:
		return SignalUp, true
	case SignalLeft:
		return SignalRight, true
	case SignalRight:
		return SignalLeft, true
	}
	return sig, false
}

// State is the sparse set of held signals for one tick
type State uint8

// With returns a copy of s with sig set
func (s State) With(sig Signal) State {
	return s | 1<<sig
}

// Without returns a copy of s with sig cleared
func (s State) Without(sig Signal) State {
	return s &^ (1 << sig)
}

// Set returns a copy of s with sig set to held
func (s State) Set(sig Signal, held bool) State {
	if held {
		return s.With(sig)
	}
	return s.Without(sig)
}

func (s State) Held(sig Signal) bool {
	return s&(1<<sig) != 0
}

// Pressed reports a rising edge of sig between prev and s
func (s State) Pressed(prev State, sig Signal) bool {
	return s.Held(sig) && !prev.Held(sig)
}

// Forward is the manual throttle axis: +1 up, -1 down, 0 neither or both
func (s State) Forward() int {
	return axis(s.Held(SignalUp), s.Held(SignalDown))
}

// Turn is the manual steering axis: +1 right (clockwise), -1 left
func (s State) Turn() int {
	return axis(s.Held(SignalRight), s.Held(SignalLeft))
}

func axis(pos, neg bool) int {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}

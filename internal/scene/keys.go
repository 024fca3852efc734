package scene

// Key is a keyboard key the scene reacts to, independent of the window
// toolkit.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyA
	KeyD
	KeyQ
	KeyE
	KeyI
	KeyK
	KeyJ
	KeyL
	KeyU
	KeyO
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
)

// HandleKey applies one key press and reports whether the state changed.
//
//	W/S A/D Q/E      move the eye along y, x, z
//	I/K L/J O/U      move the object along y, x, z
//	arrows, PgUp/Dn  steer the rotation axis
func (s *State) HandleKey(k Key) bool {
	switch k {
	case KeyW:
		s.Eye.Y += eyeStep
	case KeyS:
		s.Eye.Y -= eyeStep
	case KeyA:
		s.Eye.X -= eyeStep
	case KeyD:
		s.Eye.X += eyeStep
	case KeyQ:
		s.Eye.Z -= eyeStep
	case KeyE:
		s.Eye.Z += eyeStep

	case KeyI:
		s.Object.Y += objectStep
	case KeyK:
		s.Object.Y -= objectStep
	case KeyL:
		s.Object.X += objectStep
	case KeyJ:
		s.Object.X -= objectStep
	case KeyO:
		s.Object.Z += objectStep
	case KeyU:
		s.Object.Z -= objectStep

	case KeyUp:
		s.Axis.Y += axisStep
	case KeyDown:
		s.Axis.Y -= axisStep
	case KeyLeft:
		s.Axis.X -= axisStep
	case KeyRight:
		s.Axis.X += axisStep
	case KeyPageUp:
		s.Axis.Z += axisStep
	case KeyPageDown:
		s.Axis.Z -= axisStep

	default:
		return false
	}
	return true
}

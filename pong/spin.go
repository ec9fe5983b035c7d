package pong

// ApplySpin adjusts the ball's vertical velocity after a paddle hit. A paddle
// moving with the ball adds half again to its speed; one moving against it
// halves it. A level ball picks up one pixel per tick in the paddle's direction.
func ApplySpin(dy float64, dir PaddleDir) float64 {
	switch dir {
	case PaddleDown:
		switch {
		case dy == 0:
			return -1
		case dy > 0:
			return dy * 0.5
		default:
			return dy * 1.5
		}
	case PaddleUp:
		switch {
		case dy == 0:
			return +1
		case dy < 0:
			return dy * 0.5
		default:
			return dy * 1.5
		}
	default:
		return dy
	}
}

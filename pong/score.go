package pong

// ScoreTracker holds both players' points. Points only ever go up.
type ScoreTracker struct {
	Points [2]int
}

// RegisterGoal awards one point to the scoring player.
func (s *ScoreTracker) RegisterGoal(scorer Player) {
	s.Points[scorer]++
}

// Of returns the points of the given player.
func (s ScoreTracker) Of(p Player) int {
	return s.Points[p]
}

// Leader returns the player with more points, or false on a tie.
func (s ScoreTracker) Leader() (Player, bool) {
	switch {
	case s.Points[Player1] > s.Points[Player2]:
		return Player1, true
	case s.Points[Player2] > s.Points[Player1]:
		return Player2, true
	default:
		return Player1, false
	}
}

// ServeBias returns the required sign of the serve's horizontal velocity.
func (s ScoreTracker) ServeBias() int {
	return ServeBias(s.Points[Player1], s.Points[Player2])
}

// ServeBias makes the leading player serve toward the trailing one: +1 sends
// the ball right toward player 2, -1 left toward player 1, and 0 leaves the
// direction to chance.
func ServeBias(score1, score2 int) int {
	switch {
	case score1 > score2:
		return +1
	case score2 > score1:
		return -1
	default:
		return 0
	}
}

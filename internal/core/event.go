package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleBounce
	EventBrickHit       // Brick damaged but still standing
	EventBrickDestroyed // Brick removed, points awarded
	EventLifeLost
	EventLevelCleared
	EventGameOver
	EventVictory
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventBrickHit:
		return "brick_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is a single simulation event with the cell where it happened.
type Event struct {
	Kind   EventKind
	X, Y   int
	Points int // Points awarded, for EventBrickDestroyed
}

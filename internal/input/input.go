// Package input defines the semantic actions a player can request,
// decoupled from any concrete key binding or event source.
package input

// Intent discriminates semantic player actions.
type Intent uint8

const (
	IntentNone Intent = iota

	// Translation
	IntentForward     // move along the heading
	IntentBackward    // move against the heading
	IntentStrafeLeft  // sidestep 90 degrees left of the heading
	IntentStrafeRight // sidestep 90 degrees right of the heading

	// Rotation
	IntentTurnLeft  // decrease heading
	IntentTurnRight // increase heading

	// System
	IntentQuit // end the session
)

// MotionIntents lists the intents the motion controller polls each tick,
// in the order they are resolved.
var MotionIntents = [...]Intent{
	IntentForward,
	IntentBackward,
	IntentStrafeLeft,
	IntentStrafeRight,
	IntentTurnLeft,
	IntentTurnRight,
}

// Source reports which intents are currently being requested.
// Implementations poll device state; they must not block.
type Source interface {
	IsActive(in Intent) bool
}

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentForward:
		return "forward"
	case IntentBackward:
		return "backward"
	case IntentStrafeLeft:
		return "strafe-left"
	case IntentStrafeRight:
		return "strafe-right"
	case IntentTurnLeft:
		return "turn-left"
	case IntentTurnRight:
		return "turn-right"
	case IntentQuit:
		return "quit"
	}
	return "unknown"
}

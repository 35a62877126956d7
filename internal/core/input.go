package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionAimLeft          // Rotate aim counter-clockwise
	ActionAimRight         // Rotate aim clockwise
	ActionMoveLeft         // Shift launch point left
	ActionMoveRight        // Shift launch point right
	ActionFire             // Trace the current aim
	ActionNextLevel        // Load next level
	ActionPrevLevel        // Load previous level
	ActionHelp             // Toggle full help
	ActionQuit             // Exit viewer/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionNextLevel:
		return "NextLevel"
	case ActionPrevLevel:
		return "PrevLevel"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

package core

// Action is a logical input, abstracted from physical key presses.
// The platform maps keys, touch controls or scripted input onto these.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionSword        // E - swing sword while held
	ActionSpell        // Q - cast spell while held
)

// String returns the logical action name used by the input contract.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSword:
		return "sword"
	case ActionSpell:
		return "spell"
	default:
		return "unknown"
	}
}

// ParseAction returns the action with the given logical name.
func ParseAction(name string) (Action, bool) {
	for a := ActionUp; a <= ActionSpell; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame is the set of actions currently held down.
// The collaborator refreshes it before every Update.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as pressed.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Unset marks an action as released.
func (f *InputFrame) Unset(a Action) {
	delete(f.Actions, a)
}

// Has returns true if the given action is pressed.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear releases all actions.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		if v {
			clone.Actions[k] = true
		}
	}
	return clone
}

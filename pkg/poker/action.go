package poker

import "fmt"

// ActionKind identifies one of the four betting actions.
type ActionKind string

const (
	ActionFold  ActionKind = "fold"
	ActionCheck ActionKind = "check"
	ActionCall  ActionKind = "call"
	ActionRaise ActionKind = "raise"
)

// Action is a closed variant over the four betting actions. Target is the
// raise-to total for ActionRaise and meaningless otherwise. Construct values
// through Fold, Check, Call and RaiseTo so malformed shapes are rejected at
// the boundary rather than deep inside the betting logic.
type Action struct {
	Kind   ActionKind
	Target int64
}

// Fold returns a fold action.
func Fold() Action { return Action{Kind: ActionFold} }

// Check returns a check action.
func Check() Action { return Action{Kind: ActionCheck} }

// Call returns a call action.
func Call() Action { return Action{Kind: ActionCall} }

// RaiseTo returns a raise action targeting the given street total.
func RaiseTo(target int64) Action {
	return Action{Kind: ActionRaise, Target: target}
}

// validate rejects malformed action shapes before they reach the table.
func (a Action) validate() error {
	switch a.Kind {
	case ActionFold, ActionCheck, ActionCall:
		return nil
	case ActionRaise:
		if a.Target <= 0 {
			return fmt.Errorf("%w: raise target must be positive, got %d", ErrIllegalAction, a.Target)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown action %q", ErrIllegalAction, string(a.Kind))
	}
}

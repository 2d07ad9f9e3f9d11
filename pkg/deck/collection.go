package deck

// Action names one of the four deck transitions
type Action string

// the four transitions
const (
	ActionDraw      Action = "draw"
	ActionUndraw    Action = "undraw"
	ActionDiscard   Action = "discard"
	ActionUndiscard Action = "undiscard"
)

// ParseAction maps a wire name to an Action
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionDraw, ActionUndraw, ActionDiscard, ActionUndiscard:
		return Action(s), true
	}

	return "", false
}

// Collection is an ordered set of decks, in the order they were discovered in
// the source. The order never changes after ingestion.
type Collection []*Deck

// Apply performs the named transition on deck i and returns the label now
// showing on that deck's table. Transitions are total: an out-of-range index
// or unknown action returns "" rather than failing.
func (c Collection) Apply(i int, action Action) string {
	if i < 0 || i >= len(c) {
		return ""
	}

	switch action {
	case ActionDraw:
		return c[i].Draw()
	case ActionUndraw:
		return c[i].Undraw()
	case ActionDiscard:
		return c[i].Discard()
	case ActionUndiscard:
		return c[i].Undiscard()
	}

	return ""
}

// Draw draws on deck i
func (c Collection) Draw(i int) string {
	return c.Apply(i, ActionDraw)
}

// Undraw undraws on deck i
func (c Collection) Undraw(i int) string {
	return c.Apply(i, ActionUndraw)
}

// Discard discards on deck i
func (c Collection) Discard(i int) string {
	return c.Apply(i, ActionDiscard)
}

// Undiscard undiscards on deck i
func (c Collection) Undiscard(i int) string {
	return c.Apply(i, ActionUndiscard)
}

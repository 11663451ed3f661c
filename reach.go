package photogesture

// reachDirection is the edge whose handler a move should notify.
type reachDirection uint8

const (
	reachNone reachDirection = iota
	reachLeft
	reachRight
	reachTop
	reachBottom
)

func (d reachDirection) eventType() EventType {
	switch d {
	case reachRight:
		return EventReachRight
	case reachTop:
		return EventReachTop
	case reachBottom:
		return EventReachBottom
	default:
		return EventReachLeft
	}
}

func (d reachDirection) String() string {
	switch d {
	case reachLeft:
		return "left"
	case reachRight:
		return "right"
	case reachTop:
		return "top"
	case reachBottom:
		return "bottom"
	default:
		return "none"
	}
}

// reachHandlers records which directions have a registered handler. A
// direction without one is never entered.
type reachHandlers struct {
	left, right, top, bottom bool
}

// reachInput is the candidate position of one single-pointer move.
type reachInput struct {
	x, y       float64
	horizontal CloseEdge
	vertical   CloseEdge
	minOffset  float64
}

// axis returns the reach state a direction locks.
func (d reachDirection) axis() ReachState {
	switch d {
	case reachLeft, reachRight:
		return ReachX
	case reachTop, reachBottom:
		return ReachY
	default:
		return ReachNormal
	}
}

// nextReach runs one step of the reach state machine. While unlocked,
// directions are checked in the fixed order left, right, top, bottom and the
// first one whose edge is closed with the offset past minOffset wins. Once a
// direction is locked it keeps firing on every move for the rest of the
// gesture regardless of position, so the handler does not flicker around the
// threshold.
//
// A locked direction never falls back to Normal here. Only the end of the
// gesture resets it.
func nextReach(locked reachDirection, in reachInput, h reachHandlers) reachDirection {
	if locked != reachNone {
		return locked
	}
	hClosed := in.horizontal.Closed()
	vClosed := in.vertical.Closed()

	switch {
	case h.left && hClosed && in.x > in.minOffset:
		return reachLeft
	case h.right && hClosed && in.x < -in.minOffset:
		return reachRight
	case h.top && vClosed && in.y > in.minOffset:
		return reachTop
	case h.bottom && vClosed && in.y < -in.minOffset:
		return reachBottom
	}
	return reachNone
}

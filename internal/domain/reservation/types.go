package reservation

type Status string

const (
	StatusReserved Status = "reserved"
	StatusPaid     Status = "paid"
	StatusExpired  Status = "expired"
	StatusReleased Status = "released"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusPaid, StatusExpired, StatusReleased:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave the status.
// Expired is terminal for finalize/cancel purposes even though stored rows
// are not eagerly rewritten to it.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusExpired || s == StatusReleased
}

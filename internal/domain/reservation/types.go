package reservation

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsBlocking reports whether a reservation in this status occupies its dates.
func (s Status) IsBlocking() bool {
	switch s {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// BlockingStatuses is the set used by availability queries.
func BlockingStatuses() []Status {
	return []Status{StatusConfirmed, StatusCheckedIn, StatusCheckedOut}
}

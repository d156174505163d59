package reservation

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsActive is true for states that still hold (or claim) a slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// Kind distinguishes weekly recurring bookings from one-off exam bookings.
type Kind string

const (
	KindRegular Kind = "regular"
	KindExam    Kind = "exam"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindRegular || k == KindExam
}

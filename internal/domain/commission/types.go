package commission

type EventType string

const (
	EventClick      EventType = "click"
	EventConversion EventType = "conversion"
)

func (t EventType) String() string { return string(t) }

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid:
		return true
	default:
		return false
	}
}

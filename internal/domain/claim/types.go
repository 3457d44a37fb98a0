package claim

type Status string

const (
	StatusClaimed  Status = "claimed"
	StatusVerified Status = "verified"
	StatusUsed     Status = "used"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusClaimed, StatusVerified, StatusUsed, StatusExpired:
		return true
	default:
		return false
	}
}

package reservation

import "strings"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusShipped   Status = "shipped"
	StatusActive    Status = "active"
	StatusReturned  Status = "returned"
	StatusOverdue   Status = "overdue"
)

// labels written by the legacy back office
var legacyStatusLabels = map[string]Status{
	"예약":  StatusScheduled,
	"출고":  StatusShipped,
	"대여중": StatusActive,
	"반납":  StatusReturned,
	"연체":  StatusOverdue,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusShipped, StatusActive, StatusReturned, StatusOverdue:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	if s, ok := legacyStatusLabels[trimmed]; ok {
		return s, nil
	}
	s := Status(strings.ToLower(trimmed))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// StatusSet is a fixed set of statuses. The zero value is empty.
type StatusSet struct {
	members map[Status]struct{}
}

func NewStatusSet(statuses ...Status) StatusSet {
	m := make(map[Status]struct{}, len(statuses))
	for _, s := range statuses {
		m[s] = struct{}{}
	}
	return StatusSet{members: m}
}

func (ss StatusSet) Contains(s Status) bool {
	_, ok := ss.members[s]
	return ok
}

func (ss StatusSet) Len() int {
	return len(ss.members)
}

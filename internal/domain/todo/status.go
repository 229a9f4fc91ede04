package todo

// Status represents the lifecycle state of a Todo.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the todo still needs work.
func (s Status) IsOpen() bool {
	return s != StatusCompleted && s != StatusCancelled
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Type classifies what kind of work a Todo represents.
type Type string

const (
	TypeTask     Type = "TASK"
	TypeFollowUp Type = "FOLLOW_UP"
	TypeOutreach Type = "OUTREACH"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeTask, TypeFollowUp, TypeOutreach:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

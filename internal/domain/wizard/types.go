package wizard

type State string

const (
	StateTripDetails State = "trip_details"
	StateContactInfo State = "contact_info"
	StateReview      State = "review"
	StateSubmitting  State = "submitting"
	StateConfirmed   State = "confirmed"
	StateFailed      State = "failed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateTripDetails, StateContactInfo, StateReview, StateSubmitting, StateConfirmed, StateFailed:
		return true
	default:
		return false
	}
}

// Step is the 1-based form step shown for editable states, 0 otherwise.
func (s State) Step() int {
	switch s {
	case StateTripDetails:
		return 1
	case StateContactInfo:
		return 2
	case StateReview:
		return 3
	default:
		return 0
	}
}

func (s State) editable() bool {
	switch s {
	case StateTripDetails, StateContactInfo, StateReview:
		return true
	default:
		return false
	}
}

// Navigation is a destination the client should move to after a transition.
type Navigation string

const (
	NavNone             Navigation = ""
	NavAuthentication   Navigation = "/login"
	NavBookingsOverview Navigation = "/dashboard"
)

// Failure describes why the last submission did not produce a booking.
type Failure struct {
	Reason    string `json:"reason"`
	Retryable bool   `json:"retryable"`
}

package transition_booking

// TransitionBookingRequest HTTP request model. The body is optional for
// every action except that cancel and decline usually carry a reason.
type TransitionBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

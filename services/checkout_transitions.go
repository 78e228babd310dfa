package services

// Checkout session states. One canonical machine:
//
//	uninitialized -> ready       sheet bundle issued by the provider
//	ready         -> presenting  client is showing the payment sheet
//	presenting    -> succeeded   provider confirmed the intent
//	presenting    -> failed      provider rejected the confirmation
//	failed        -> ready       session is retryable with the same tokens
//
// succeeded is the only terminal state; a failed payment always returns the
// session to ready so the user can retry without rebuilding the sheet.
const (
	StateUninitialized = "uninitialized"
	StateReady         = "ready"
	StatePresenting    = "presenting"
	StateSucceeded     = "succeeded"
	StateFailed        = "failed"
)

var checkoutTransitions = map[string][]string{
	StateUninitialized: {StateReady},
	StateReady:         {StatePresenting},
	StatePresenting:    {StateSucceeded, StateFailed},
	StateFailed:        {StateReady},
	StateSucceeded:     {},
}

func CanTransition(from, to string) bool {
	for _, next := range checkoutTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsTerminal(state string) bool {
	return state == StateSucceeded
}

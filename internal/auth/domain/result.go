package domain

// Client-visible failure reasons. The decode failure kinds are collapsed into
// one reason so responses don't reveal whether a signature or the format was
// at fault.
const (
	ReasonMissingHeader = "Missing or invalid authorization header"
	ReasonInvalidToken  = "Invalid or expired token"
)

// Result is the outcome of authenticating one inbound request. Exactly one
// of UserID and Reason is populated.
type Result struct {
	Authenticated bool
	UserID        string
	Reason        string
}

// AuthenticatedResult builds a successful result carrying the subject identifier.
func AuthenticatedResult(userID string) Result {
	return Result{Authenticated: true, UserID: userID}
}

// FailedResult builds a failed result carrying the client-visible reason.
func FailedResult(reason string) Result {
	return Result{Authenticated: false, Reason: reason}
}

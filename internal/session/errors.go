package session

// AuthFailure carries the human-readable reason a login or registration was refused.
type AuthFailure struct {
	Message string
	Err     error
}

func (e *AuthFailure) Error() string {
	return e.Message
}

func (e *AuthFailure) Unwrap() error {
	return e.Err
}

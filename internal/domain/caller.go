package domain

// Caller identifies who invokes a service operation. Handlers build it from
// the verified credential and pass it down explicitly.
type Caller struct {
	UserID  int64
	IsAdmin bool
}

func (c Caller) Authenticated() bool {
	return c.UserID > 0
}

// RequireAdmin returns ErrForbidden unless the caller is an administrator.
func (c Caller) RequireAdmin() error {
	if !c.Authenticated() || !c.IsAdmin {
		return ErrForbidden
	}
	return nil
}

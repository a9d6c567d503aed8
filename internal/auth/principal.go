package auth

import "errors"

// Role names as stored in the roles table.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
	RoleGuest    = "GUEST"
)

// ErrNotAuthenticated signals that an access decision was requested without a
// resolved principal. That is a contract violation on the caller's side:
// routes invoking decisions must require authentication first.
var ErrNotAuthenticated = errors.New("user not authenticated")

// ErrAccessDenied is returned when a principal may not act on the target
// resource. Handlers translate it into a 403 response.
var ErrAccessDenied = errors.New("access denied: you can only access your own information")

// Principal is the resolved identity attached to a request after token
// verification: the user plus its role authorities.
type Principal struct {
	UserID uint64
	Email  string
	Roles  []string
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	for _, r := range p.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}

// CanAccessUser decides whether the principal may act on the user resource
// owned by ownerID: allowed for admins and for the owner itself. A nil
// principal yields ErrNotAuthenticated, never a silent false.
func CanAccessUser(p *Principal, ownerID uint64) (bool, error) {
	if p == nil {
		return false, ErrNotAuthenticated
	}
	return p.IsAdmin() || p.UserID == ownerID, nil
}

package domain

// Role is the coarse authorization category assigned by the backend. The
// server re-checks authorization on every request; the client uses the role
// only to decide which commands are reachable.
type Role string

const (
	RoleAdmin    Role = "ADM"
	RoleSeller   Role = "VEN"
	RoleCustomer Role = "CLI"
	// RoleAnonymous is the client-side state before a profile has been
	// resolved; the backend never returns it.
	RoleAnonymous Role = ""
)

// Staff reports whether the role unlocks administration, point-of-sale and
// report commands.
func (r Role) Staff() bool {
	switch r {
	case RoleAdmin, RoleSeller:
		return true
	case RoleCustomer, RoleAnonymous:
		return false
	}
	return false
}

func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleCustomer:
		return true
	}
	return false
}

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "administrator"
	case RoleSeller:
		return "seller"
	case RoleCustomer:
		return "customer"
	default:
		return "anonymous"
	}
}

// User is the authenticated account as returned by GET /api/profile/.
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       *int    `json:"edad"`
	Role      Role    `json:"rol"`
	// ClientProfile is present once the account has purchased (or been
	// registered) as a client; checkout demands the data otherwise.
	ClientProfile *Client `json:"cliente_profile"`
}

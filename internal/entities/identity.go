package entities

type Role string

const (
	RoleOwner  Role = "owner"
	RoleGuard  Role = "guard"
	RoleParker Role = "parker"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleGuard, RoleParker:
		return true
	}
	return false
}

// Identity is what the identity provider yields for an authenticated caller.
// TenantID is nil for principals not attached to a condominium (parkers).
type Identity struct {
	UserID   string  `json:"user_id"`
	Role     Role    `json:"role"`
	TenantID *string `json:"tenant_id"`
}

func (i Identity) Tenant() string {
	if i.TenantID == nil {
		return ""
	}
	return *i.TenantID
}

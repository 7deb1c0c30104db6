package domain

import "fmt"

// Role is one rung of the fixed authorization hierarchy.
type Role string

const (
	RoleSecretary         Role = "secretary"
	RoleChurchManager     Role = "church_manager"
	RoleTreasurer         Role = "treasurer"
	RolePastor            Role = "pastor"
	RoleFundDirector      Role = "fund_director"
	RoleNationalTreasurer Role = "national_treasurer"
	RoleAdmin             Role = "admin"
)

// roleLevels orders the hierarchy, low to high.
var roleLevels = map[Role]int{
	RoleSecretary:         1,
	RoleChurchManager:     2,
	RoleTreasurer:         3,
	RolePastor:            4,
	RoleFundDirector:      5,
	RoleNationalTreasurer: 6,
	RoleAdmin:             7,
}

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed hierarchy.
func ParseRole(s string) (Role, error) {
	if _, ok := roleLevels[Role(s)]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return Role(s), nil
}

// Level returns the role's position in the hierarchy. Unknown roles rank
// below every real role.
func (r Role) Level() int {
	return roleLevels[r]
}

// AtLeast reports whether this role is at or above the given minimum.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// IsNational reports whether the role carries unrestricted national-level
// access. Fund directors sit above pastors in the hierarchy but remain
// scoped to their assigned fund.
func (r Role) IsNational() bool {
	return r == RoleNationalTreasurer || r == RoleAdmin
}

// Actor is the resolved per-call identity this core consumes: a user, one
// role, and an optional church or fund scope. It is supplied by the identity
// collaborator and used only to gate operations.
type Actor struct {
	UserID   string  `json:"userID"`
	Role     Role    `json:"role"`
	ChurchID *string `json:"churchID,omitempty"` // set for church-scoped roles
	FundID   *string `json:"fundID,omitempty"`   // set for fund_director
}

// InChurch reports whether the actor is scoped to the given church.
func (a *Actor) InChurch(churchID string) bool {
	return a.ChurchID != nil && *a.ChurchID == churchID
}

// OverseesFund reports whether the actor is scoped to the given fund.
func (a *Actor) OverseesFund(fundID string) bool {
	return a.FundID != nil && *a.FundID == fundID
}

package domain

// User is an authenticated account. The role and optional scope columns are
// what the auth middleware folds into an Actor on each call.
type User struct {
	UserID       string  `json:"userID"` // Primary Key (UUID)
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Role         Role    `json:"role"`
	ChurchID     *string `json:"churchID,omitempty"`
	FundID       *string `json:"fundID,omitempty"`
	IsActive     bool    `json:"isActive"`
	AuditFields
}

package domain

// Church is the directory entry of one local congregation. Managed by an
// external directory service; this core only reads it for scope checks and
// transaction attribution.
type Church struct {
	ChurchID   string `json:"churchID"` // Primary Key (UUID)
	Name       string `json:"name"`
	City       string `json:"city"`
	PastorName string `json:"pastorName"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

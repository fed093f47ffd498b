package models

const (
	RoleAdmin   = "admin"
	RoleCleaner = "cleaner"
)

// User is a portal account. Accounts are provisioned by the seed data
// (there is no self-registration), and cleaner accounts share their id
// with the matching Cleaner record.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	Email    string `json:"email" gorm:"type:varchar(255);unique;not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
	Role     string `json:"role" gorm:"type:varchar(32);not null"`
}

package model

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a system user
type User struct {
	Base         `bson:",inline"`
	FullName     string `json:"fullName" db:"full_name" bson:"full_name"`
	Email        string `json:"email" db:"email" bson:"email"`
	Phone        string `json:"phone" db:"phone" bson:"phone"`
	PasswordHash string `json:"-" db:"password_hash" bson:"password"`
	Role         Role   `json:"role" db:"role" bson:"role"`
	IsActive     bool   `json:"isActive" db:"is_active" bson:"is_active"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

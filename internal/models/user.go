package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FirstName    string   `gorm:"type:varchar(100)"`
	LastName     string   `gorm:"type:varchar(100)"`
	Role         UserRole `gorm:"type:varchar(20);not null;index"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleSuperAdmin
}

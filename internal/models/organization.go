package models

// Organization управляется одним аккаунтом (AccountID уникален)
type Organization struct {
	BaseModel
	AccountID   string `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(200);not null;index"`
	Description string `gorm:"type:text"`
	Website     string `gorm:"type:varchar(500)"`
	Location    string `gorm:"type:varchar(200)"`
	LogoURL     string `gorm:"type:varchar(500)"`

	Account *User `gorm:"foreignKey:AccountID;constraint:OnDelete:RESTRICT"`
}

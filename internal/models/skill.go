package models

type Skill struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;index"`
	SkillName string `gorm:"type:varchar(100);not null;index"`
	Level     string `gorm:"type:varchar(50)"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

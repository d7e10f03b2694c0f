package models

// Opportunity принадлежит ровно одному владельцу: организации ИЛИ пользователю.
// Инвариант дублируется CHECK-ограничением opportunities_single_owner (см. database.Migrate).
type Opportunity struct {
	BaseModel
	Title           string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text;not null"`
	Category        Category        `gorm:"type:varchar(20);not null;index"`
	OpportunityType OpportunityType `gorm:"type:varchar(20);not null;index"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);not null;index"`
	PaymentType     PaymentType     `gorm:"type:varchar(20);not null;index"`
	Location        string          `gorm:"type:varchar(200)"`
	ImageURL        string          `gorm:"type:varchar(500)"`
	ImageKey        string          `gorm:"type:varchar(300)"` // ключ объекта в хранилище

	OrganizationID *string `gorm:"type:uuid;index"`
	UserID         *string `gorm:"type:uuid;index"`

	Organization *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:RESTRICT"`
	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// OwnerKind - "organization" или "user", в зависимости от заполненного владельца
func (o *Opportunity) OwnerKind() string {
	if o.OrganizationID != nil && *o.OrganizationID != "" {
		return "organization"
	}
	return "user"
}

// HasSingleOwner проверяет инвариант "ровно один владелец"
func (o *Opportunity) HasSingleOwner() bool {
	hasOrg := o.OrganizationID != nil && *o.OrganizationID != ""
	hasUser := o.UserID != nil && *o.UserID != ""
	return hasOrg != hasUser
}

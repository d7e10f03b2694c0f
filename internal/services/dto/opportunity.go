package dto

import (
	"time"

	"wematch_backend/internal/models"
)

// CreateOpportunityRequest принимается как JSON или multipart/form-data (плюс файл image)
type CreateOpportunityRequest struct {
	Title           string                 `json:"title" form:"title" validate:"required,max=200"`
	Description     string                 `json:"description" form:"description" validate:"required,max=10000"`
	Category        models.Category        `json:"category" form:"category" validate:"required,is-category"`
	OpportunityType models.OpportunityType `json:"opportunityType" form:"opportunityType" validate:"required,is-opportunity-type"`
	ExperienceLevel models.ExperienceLevel `json:"experienceLevel" form:"experienceLevel" validate:"required,is-experience-level"`
	PaymentType     models.PaymentType     `json:"paymentType" form:"paymentType" validate:"required,is-payment-type"`
	Location        string                 `json:"location" form:"location" validate:"max=200"`
}

// UpdateOpportunityRequest - частичное обновление. Полей владельца нет.
type UpdateOpportunityRequest struct {
	Title           *string                 `json:"title" form:"title" validate:"omitempty,min=1,max=200"`
	Description     *string                 `json:"description" form:"description" validate:"omitempty,min=1,max=10000"`
	Category        *models.Category        `json:"category" form:"category" validate:"omitempty,is-category"`
	OpportunityType *models.OpportunityType `json:"opportunityType" form:"opportunityType" validate:"omitempty,is-opportunity-type"`
	ExperienceLevel *models.ExperienceLevel `json:"experienceLevel" form:"experienceLevel" validate:"omitempty,is-experience-level"`
	PaymentType     *models.PaymentType     `json:"paymentType" form:"paymentType" validate:"omitempty,is-payment-type"`
	Location        *string                 `json:"location" form:"location" validate:"omitempty,max=200"`
}

type OpportunityResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Category        models.Category        `json:"category"`
	OpportunityType models.OpportunityType `json:"opportunityType"`
	ExperienceLevel models.ExperienceLevel `json:"experienceLevel"`
	PaymentType     models.PaymentType     `json:"paymentType"`
	Location        string                 `json:"location"`
	ImageURL        string                 `json:"imageUrl,omitempty"`
	OrganizationID  *string                `json:"organizationId"`
	UserID          *string                `json:"userId"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

func NewOpportunityResponse(o *models.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:              o.ID,
		Title:           o.Title,
		Description:     o.Description,
		Category:        o.Category,
		OpportunityType: o.OpportunityType,
		ExperienceLevel: o.ExperienceLevel,
		PaymentType:     o.PaymentType,
		Location:        o.Location,
		ImageURL:        o.ImageURL,
		OrganizationID:  o.OrganizationID,
		UserID:          o.UserID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ImageUpload - файл из multipart-части image, уже прочитанный хэндлером
type ImageUpload struct {
	Filename    string
	ContentType string // заявленный клиентом, может быть пустым
	Data        []byte
}

package dto

import (
	"time"

	"wematch_backend/internal/models"
)

type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Website     string `json:"website" validate:"omitempty,url,max=500"`
	Location    string `json:"location" validate:"max=200"`
	LogoURL     string `json:"logoUrl" validate:"omitempty,url,max=500"`
}

// UpdateOrganizationRequest - частичное обновление, отсутствующие поля не меняются
type UpdateOrganizationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Website     *string `json:"website" validate:"omitempty,url,max=500"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url,max=500"`
}

type OrganizationResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	LogoURL     string    `json:"logoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewOrganizationResponse(o *models.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		AccountID:   o.AccountID,
		Name:        o.Name,
		Description: o.Description,
		Website:     o.Website,
		Location:    o.Location,
		LogoURL:     o.LogoURL,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

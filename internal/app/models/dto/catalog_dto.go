package dto

import "github.com/yigit/jobsearch/internal/app/models"

// OrganizationRequest creates or renames an organization.
type OrganizationRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Microsoft"`
}

// OrganizationResponse is the public shape of an organization.
type OrganizationResponse struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"Microsoft"`
	Creator int64  `json:"creator" example:"7"`
}

// NewOrganizationResponse maps an organization model.
func NewOrganizationResponse(o *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{ID: o.ID, Name: o.Name, Creator: o.CreatorID}
}

// DegreeRequest creates or renames a degree.
type DegreeRequest struct {
	Name string `json:"name" binding:"required,max=30" example:"Bachelor's"`
}

// LocationResponse is the public shape of a location.
type LocationResponse struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"Berlin"`
}

// SpotlightRequest is used for create and full update.
type SpotlightRequest struct {
	Title       string `json:"title" binding:"required,max=50" example:"Join a startup"`
	Img         string `json:"img" binding:"required,url" example:"https://example.com/img.png"`
	Description string `json:"description" binding:"required" example:"Startups are hiring."`
}

// SpotlightPatchRequest is a partial spotlight update; nil fields are untouched.
type SpotlightPatchRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=50"`
	Img         *string `json:"img" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// OrganizationPatchRequest is a partial organization update.
type OrganizationPatchRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
}

package dtos

import "github.com/bracurobu/traction-intake/internal/models"

// RegistrationRequest carries the raw form values exactly as the public form
// posts them. Field names (including the historical "prefered" spelling) are
// the form contract; the service layer renames them into the upstream wire
// shape on submit.
type RegistrationRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	ID    string `json:"id" validate:"required,min=8,max=10"`
	Phone string `json:"phone" validate:"required,min=2,max=11"`

	Email       string `json:"email" validate:"required,email"`
	GsuiteEmail string `json:"gsuite_email" validate:"required,email"`

	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`

	JoinedBracu string `json:"joined_bracu"`
	RSBatch     string `json:"rs_batch" validate:"required,rs_batch"`

	PreferredDepartment  string `json:"prefered_department" validate:"required,department"`
	PreferredDepartment2 string `json:"prefered_department2" validate:"omitempty,department"`

	// Transient inputs: folded into the bio narrative, never stored as-is.
	BloodGroup string `json:"blood_group" validate:"required,blood_group"`
	Hobbies    string `json:"hobbies"`

	FacebookProfile string `json:"facebook_profile" validate:"required,url"`
	LinkedinProfile string `json:"linkedin_profile" validate:"omitempty,url"`
	PortfolioLink   string `json:"portfolio_link" validate:"omitempty,url"`
}

// LoginRequest is the credential pair for the admin dashboard. Nothing beyond
// non-emptiness is checked locally; the upstream auth endpoint decides.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ListQuery holds the dashboard view parameters. Sort and filter act on the
// currently loaded page only, never on the full upstream collection.
type ListQuery struct {
	Page  int    `form:"page,default=1" binding:"omitempty,min=1"`
	Sort  string `form:"sort" binding:"omitempty,oneof=asc desc"`
	Email string `form:"email"`
}

// ListResponse is one rendered dashboard page. LastPage is
// ceil(total/per_page) so navigation can disable at the boundaries.
type ListResponse struct {
	Items    []models.Applicant `json:"items"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PerPage  int                `json:"per_page"`
	LastPage int                `json:"last_page"`
}

package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/dtos"
	"github.com/bracurobu/traction-intake/internal/models"
	"github.com/bracurobu/traction-intake/internal/validation"
)

// ApplicantCreator is the one upstream call the registration flow makes.
type ApplicantCreator interface {
	CreateApplicant(ctx context.Context, applicant *models.Applicant) error
}

// RegistrationService runs the submit flow: validate, reshape to the wire
// contract, send once. No retries, no classification of upstream failures.
type RegistrationService struct {
	schema *validation.Schema
	client ApplicantCreator
	logger *zap.Logger
}

func NewRegistrationService(schema *validation.Schema, client ApplicantCreator, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{schema: schema, client: client, logger: logger}
}

// Submit validates the form and, only when every field passes, issues the
// single creation request. Field errors short-circuit before any network
// side effect.
func (s *RegistrationService) Submit(ctx context.Context, req *dtos.RegistrationRequest) (validation.FieldErrors, error) {
	if fieldErrs := s.schema.Validate(req); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	applicant := mapToWire(req)
	if err := s.client.CreateApplicant(ctx, applicant); err != nil {
		s.logger.Warn("applicant submission failed",
			zap.String("student_id", applicant.StudentID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("applicant registered", zap.String("student_id", applicant.StudentID))
	return nil, nil
}

// mapToWire renames the form fields into the upstream record shape, folds the
// transient hobbies/blood-group inputs into the bio narrative, and normalizes
// blank optional links to null.
func mapToWire(req *dtos.RegistrationRequest) *models.Applicant {
	departments := []string{req.PreferredDepartment}
	if req.PreferredDepartment2 != "" {
		departments = append(departments, req.PreferredDepartment2)
	}

	return &models.Applicant{
		StudentID: req.ID,
		Name:      req.Name,
		Semester:  req.JoinedBracu,

		PersonalEmail: req.Email,
		BracuEmail:    req.GsuiteEmail,
		Mobile:        req.Phone,
		Address:       req.Address,

		Bio: "Form Generated: \nHobbies: " + req.Hobbies + "\nBlood Group:" + req.BloodGroup,

		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		RS:          req.RSBatch,

		PreferredDepartments: departments,

		FacebookProfileLink: req.FacebookProfile,
		LinkedinProfileLink: nilIfEmpty(req.LinkedinProfile),
		GithubProfileLink:   nilIfEmpty(req.PortfolioLink),
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

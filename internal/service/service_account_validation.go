package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-portfolio/internal/validators"
	"github.com/MKhiriev/go-card-portfolio/models"
)

// accountValidationService checks the format of every input before handing
// it to the wrapped AccountService.
type accountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &accountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *accountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func (v *accountValidationService) CheckSignupField(ctx context.Context, req models.SignupRequest, field string) error {
	if err := v.validator.Validate(ctx, req, field); err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	return v.inner.CheckSignupField(ctx, req, field)
}

func (v *accountValidationService) Signup(ctx context.Context, req models.SignupRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("invalid signup: %w", err)
	}
	return v.inner.Signup(ctx, req)
}

func (v *accountValidationService) CheckUsername(ctx context.Context, username string) error {
	if err := v.validator.Validate(ctx, models.LoginRequest{Username: username}, validators.FieldUsername); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	return v.inner.CheckUsername(ctx, username)
}

func (v *accountValidationService) Login(ctx context.Context, session *Session, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("invalid login: %w", err)
	}
	return v.inner.Login(ctx, session, req)
}

func (v *accountValidationService) CheckPhone(ctx context.Context, phone string) error {
	if err := v.validator.Validate(ctx, models.ResetRequest{Phone: phone}, validators.FieldPhone); err != nil {
		return fmt.Errorf("invalid phone number: %w", err)
	}
	return v.inner.CheckPhone(ctx, phone)
}

func (v *accountValidationService) ResetPassword(ctx context.Context, req models.ResetRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("invalid password reset: %w", err)
	}
	return v.inner.ResetPassword(ctx, req)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	inErrors "github.com/anandita/storefront/internal/errors"
	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/internal/log"
	"github.com/anandita/storefront/internal/otel"
	"github.com/anandita/storefront/notification"
	"github.com/anandita/storefront/user/pkg/request"
)

type UserService struct {
	client   *httpx.Client
	notifier notification.Notifier
}

func NewUserService(client *httpx.Client, notifier notification.Notifier) UserService {
	return UserService{client: client, notifier: notifier}
}

// Register validates the form locally first: a validation failure surfaces an
// error message and never issues a network request. On success the server
// replies 201 and the form may be reset.
func (s UserService) Register(c context.Context, param request.Register) error {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Register").
		Object(log.KeyRequestBody, param).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating form").Logger()
	logger.Info().Msg("validating registration form")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, param); err != nil {
		err = fmt.Errorf("failed validating registration form with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.notifier.Error(validationMessage(err))
		return err
	}
	logger.Info().Msg("validated registration form")

	logger = logger.With().Str(log.KeyProcess, "registering user").Logger()
	logger.Info().Msgf("registering email=%s", param.Email)
	c = logger.WithContext(c)
	err := s.client.Post(c, "/register", param, nil)
	if err != nil {
		err = fmt.Errorf("failed registering email=%s with error=%w", param.Email, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.notifier.Error(
			inErrors.UserMessage(err, "Registration failed. Please try again."),
		)
		return err
	}
	logger.Info().Msgf("registered email=%s", param.Email)
	s.notifier.Success("Registration successful! You can now log in.")

	return nil
}

// validationMessage maps the first failing field to the message the form
// shows, matching the storefront's wording.
func validationMessage(err error) string {
	validationErrs := validator.ValidationErrors{}
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Registration failed. Please try again."
	}
	first := validationErrs[0]
	switch {
	case first.Field() == "ConfirmPassword":
		return "Passwords do not match!"
	case first.Field() == "Password" && first.Tag() == "min":
		return "Password must be at least 6 characters long!"
	case first.Field() == "Email" && first.Tag() == "email":
		return "Please enter a valid email address."
	default:
		return "Full name, email and password are required."
	}
}

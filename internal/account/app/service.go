package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/dwikikusuma/shoping-storefront/internal/account/domain"
)

type Service struct {
	gateway  AuthGateway
	tokens   TokenStore
	validate *validator.Validate
	log      *slog.Logger
}

func NewService(gateway AuthGateway, tokens TokenStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		gateway:  gateway,
		tokens:   tokens,
		validate: validator.New(),
		log:      log.With(slog.String("component", "account")),
	}
}

// Login exchanges credentials for a customer access token and stores it.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	in := domain.LoginInput{Email: email, Password: password}
	if err := s.validate.Struct(in); err != nil {
		return nil, newValidationError(err)
	}

	token, userErrs, err := s.gateway.CreateAccessToken(ctx, in)
	if err != nil {
		s.log.Warn("login failed", slog.Any("err", err))
		return nil, remoteError(err)
	}
	if len(userErrs) > 0 {
		ue := userErrs[0]
		msg := ue.Message
		if ue.Code == "UNIDENTIFIED_CUSTOMER" {
			msg = msgBadCredentials
		}
		return nil, &Error{Code: ue.Code, Message: msg}
	}
	if token == nil || token.Token == "" {
		return nil, &Error{Message: msgNoToken}
	}

	if err := s.tokens.SetAccessToken(ctx, token.Token); err != nil {
		return nil, fmt.Errorf("store access token: %w", err)
	}
	s.log.Info("customer logged in", slog.String("email", email))
	return token, nil
}

func (s *Service) Register(ctx context.Context, in domain.RegisterInput) (*domain.Customer, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, newValidationError(err)
	}

	customer, userErrs, err := s.gateway.CreateCustomer(ctx, in)
	if err != nil {
		s.log.Warn("register failed", slog.Any("err", err))
		return nil, remoteError(err)
	}
	if len(userErrs) > 0 {
		ue := userErrs[0]
		msg := ue.Message
		switch ue.Code {
		case "TAKEN":
			msg = msgEmailTaken
		case "INVALID":
			msg = msgInvalidEmail
		}
		return nil, &Error{Code: ue.Code, Message: msg}
	}
	if customer == nil {
		return nil, &Error{Message: msgUnknown}
	}
	return customer, nil
}

// Logout forgets the access token. The cart id is kept.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.tokens.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

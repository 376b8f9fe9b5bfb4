package services

import (
	"context"
	"errors"
	"fmt"

	"havahills/backoffice/internal/common"
	"havahills/backoffice/internal/config"
	"havahills/backoffice/internal/constants"
	"havahills/backoffice/internal/logging"
	"havahills/backoffice/internal/models/dtos"
	"havahills/backoffice/internal/models/entities"
	"havahills/backoffice/internal/providers"
	"havahills/backoffice/internal/views"
)

// AuthService signs users in against the hosted auth endpoint and resolves
// their back-office role. Admin and limited roles come from configuration;
// anyone else must match a client record by email or the sign-in is refused.
type AuthService struct {
	authProvider providers.AuthProvider
	dataProvider providers.DataProvider
	sessions     *common.SessionService
	cfg          *config.Config
}

func NewAuthService(
	authProvider providers.AuthProvider,
	dataProvider providers.DataProvider,
	sessions *common.SessionService,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		authProvider: authProvider,
		dataProvider: dataProvider,
		sessions:     sessions,
		cfg:          cfg,
	}
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*dtos.LoginResponse, error) {
	subjectID, err := s.authProvider.SignIn(ctx, email, password)
	if err != nil {
		logging.Warn("Sign-in rejected by auth endpoint", "email", email, "error", err.Error())
		return nil, errors.New(constants.MsgLoginFailed)
	}

	role := constants.RoleClient
	var clientID, clientName string

	switch {
	case s.cfg.IsAdmin(email):
		role = constants.RoleAdmin
	case s.cfg.IsLimited(email):
		role = constants.RoleLimited
	default:
		client, err := s.findClientByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve client account: %w", err)
		}
		if client == nil {
			return nil, errors.New(constants.MsgNoClientAccount)
		}
		clientID = client.ID
		clientName = client.Name
	}

	sessionID, err := s.sessions.CreateSession(ctx, subjectID, email, role, clientID, clientName)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logging.Info("User signed in", "email", email, "role", role.String())

	return &dtos.LoginResponse{
		SessionID:  sessionID,
		Role:       role.String(),
		Email:      email,
		ClientID:   clientID,
		ClientName: clientName,
	}, nil
}

func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}

// CreateClientAccount provisions auth credentials for an existing client
// record and links the two via the client's AuthID column.
func (s *AuthService) CreateClientAccount(ctx context.Context, email, password string) error {
	client, err := s.findClientByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up client: %w", err)
	}
	if client == nil {
		return errors.New(constants.MsgNoClientAccount)
	}
	if client.AuthID != "" {
		return errors.New("client already has an account")
	}

	subjectID, err := s.authProvider.SignUp(ctx, email, password, client.Name)
	if err != nil {
		return fmt.Errorf("failed to create auth account: %w", err)
	}

	fields := map[string]interface{}{"auth_id": subjectID}
	if err := s.dataProvider.UpdateRecord(ctx, constants.CollectionClients, client.ID, fields); err != nil {
		return fmt.Errorf("failed to link auth account to client: %w", err)
	}

	logging.Info("Client account created", "email", email, "client", client.Name)
	return nil
}

func (s *AuthService) findClientByEmail(ctx context.Context, email string) (*entities.Client, error) {
	records, err := s.dataProvider.FetchRecords(ctx, providers.Query{
		Collection: constants.CollectionClients,
		Equals:     map[string]string{"Email": email},
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	client := views.NormalizeClient(records[0])
	return &client, nil
}

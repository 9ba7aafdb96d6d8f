package usecase

import (
	"context"
	"fmt"

	"github.com/rozanhaisyam/wablas-api-bolt/config"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/app"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/link"
	"github.com/rozanhaisyam/wablas-api-bolt/pkg/utils"
	"github.com/sirupsen/logrus"
)

// AppService owns login, logout and session state. The gateway store is
// both the client configuration and the authentication flag, so setting it
// configures the client and authenticates in one step.
type AppService struct {
	store *config.GatewayStore
	link  link.ILinkUsecase
}

func NewAppService(store *config.GatewayStore, linkService link.ILinkUsecase) *AppService {
	return &AppService{store: store, link: linkService}
}

func (s *AppService) Login(ctx context.Context, request app.LoginRequest) error {
	if err := utils.ValidateStruct(request); err != nil {
		return fmt.Errorf("invalid login request: %w", err)
	}

	if err := s.store.Set(config.Region(request.Server), request.APIKey); err != nil {
		return err
	}

	// a credential change invalidates any attempt polling under the old one
	s.link.Reset()

	logrus.Infof("🔐 [App] logged in against region %s", request.Server)
	return nil
}

func (s *AppService) Logout(ctx context.Context) error {
	s.link.Reset()
	s.store.Clear()
	logrus.Info("🔐 [App] logged out")
	return nil
}

func (s *AppService) Session(ctx context.Context) app.SessionResponse {
	cfg := s.store.Current()
	resp := app.SessionResponse{Authenticated: cfg.APIKey != ""}
	if resp.Authenticated {
		resp.Server = string(cfg.Server)
	}
	return resp
}

// Regions lists the selectable server regions for the login view.
func (s *AppService) Regions() []app.RegionOption {
	options := make([]app.RegionOption, 0, len(config.Regions()))
	for _, region := range config.Regions() {
		root, _ := config.ServerRoot(region)
		options = append(options, app.RegionOption{
			Value: string(region),
			Label: fmt.Sprintf("%s (%s)", region, root),
		})
	}
	return options
}

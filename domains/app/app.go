package app

import (
	"context"
)

type IAppUsecase interface {
	Login(ctx context.Context, request LoginRequest) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) SessionResponse
}

// LoginRequest carries the credential submitted by the login form.
type LoginRequest struct {
	Server string `json:"server" validate:"required"`
	APIKey string `json:"api_key" validate:"required"`
}

// SessionResponse describes the binary authentication state.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Server        string `json:"server,omitempty"`
}

// RegionOption is one selectable server region for the login view.
type RegionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

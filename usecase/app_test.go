package usecase

import (
	"context"
	"testing"

	"github.com/rozanhaisyam/wablas-api-bolt/config"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/app"
	"github.com/rozanhaisyam/wablas-api-bolt/domains/link"
)

type fakeLink struct {
	resets int
	state  link.State
}

func (f *fakeLink) Generate(ctx context.Context) (link.Snapshot, error) {
	return link.Snapshot{State: f.state}, nil
}

func (f *fakeLink) Snapshot() link.Snapshot {
	return link.Snapshot{State: f.state}
}

func (f *fakeLink) Reset() {
	f.resets++
	f.state = link.StateIdle
}

func TestLoginDiscardsStaleLinkAttempt(t *testing.T) {
	store := config.NewGatewayStore()
	fl := &fakeLink{state: link.StatePending}
	service := NewAppService(store, fl)

	err := service.Login(context.Background(), app.LoginRequest{Server: "deu", APIKey: "ABC123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if fl.resets != 1 {
		t.Errorf("link reset %d times on login, want 1", fl.resets)
	}
	if cfg := store.Current(); cfg.Server != config.RegionDEU || cfg.APIKey != "ABC123" {
		t.Errorf("store not configured: %+v", cfg)
	}
}

func TestFailedLoginKeepsLinkAttempt(t *testing.T) {
	store := config.NewGatewayStore()
	fl := &fakeLink{state: link.StatePending}
	service := NewAppService(store, fl)

	if err := service.Login(context.Background(), app.LoginRequest{Server: "atlantis", APIKey: "key"}); err == nil {
		t.Fatal("expected unknown-region error")
	}
	if err := service.Login(context.Background(), app.LoginRequest{Server: "eu"}); err == nil {
		t.Fatal("expected validation error for missing key")
	}

	if fl.resets != 0 {
		t.Errorf("rejected login reset the link attempt %d times", fl.resets)
	}
}

func TestLogoutResetsLinkAndClearsStore(t *testing.T) {
	store := config.NewGatewayStore()
	if err := store.Set(config.RegionUS, "key"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	fl := &fakeLink{state: link.StatePending}
	service := NewAppService(store, fl)

	if err := service.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if fl.resets != 1 {
		t.Errorf("link reset %d times on logout, want 1", fl.resets)
	}
	if store.Authenticated() {
		t.Error("store still authenticated after logout")
	}
}

package config

import (
	"fmt"
	"net/url"
	"sync"
)

// Region identifies one of the fixed Wablas deployment endpoints.
type Region string

const (
	RegionEU  Region = "eu"
	RegionDEU Region = "deu"
	RegionAS  Region = "as"
	RegionDAS Region = "das"
	RegionUS  Region = "us"
	RegionDUS Region = "dus"
)

var regionServers = map[Region]string{
	RegionEU:  "https://eu.wablas.com",
	RegionDEU: "https://deu.wablas.com",
	RegionAS:  "https://as.wablas.com",
	RegionDAS: "https://das.wablas.com",
	RegionUS:  "https://us.wablas.com",
	RegionDUS: "https://dus.wablas.com",
}

// ServerRoot resolves a region to its fixed endpoint.
func ServerRoot(region Region) (string, bool) {
	root, ok := regionServers[region]
	return root, ok
}

// Regions returns the closed set of selectable regions.
func Regions() []Region {
	return []Region{RegionEU, RegionDEU, RegionAS, RegionDAS, RegionUS, RegionDUS}
}

// GatewayConfig holds the active gateway selection.
type GatewayConfig struct {
	Server Region
	APIKey string
}

// GatewayStore holds the process-wide gateway configuration. Every outgoing
// call reads the current state at call time, so a re-login immediately
// redirects new requests to the new region and key.
type GatewayStore struct {
	mu  sync.RWMutex
	cfg GatewayConfig
}

// NewGatewayStore returns a store with the default region and no credential.
func NewGatewayStore() *GatewayStore {
	return &GatewayStore{cfg: GatewayConfig{Server: RegionEU}}
}

// Set replaces the configuration wholesale. Region and key always change
// together, so a key is never paired with a stale region.
func (s *GatewayStore) Set(region Region, apiKey string) error {
	if _, ok := regionServers[region]; !ok {
		return fmt.Errorf("unknown server region: %q", region)
	}

	s.mu.Lock()
	s.cfg = GatewayConfig{Server: region, APIKey: apiKey}
	s.mu.Unlock()
	return nil
}

// Clear drops the credential and resets the region to the default.
func (s *GatewayStore) Clear() {
	s.mu.Lock()
	s.cfg = GatewayConfig{Server: RegionEU}
	s.mu.Unlock()
}

// Current returns a copy of the active configuration.
func (s *GatewayStore) Current() GatewayConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Authenticated reports whether a credential is held.
func (s *GatewayStore) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.APIKey != ""
}

// BaseURL returns the API root for the current region.
func (s *GatewayStore) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return regionServers[s.cfg.Server] + "/api"
}

// ScanURL builds the manual device-link URL for a QR token, for linking
// without a camera scan.
func (s *GatewayStore) ScanURL(token string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return regionServers[s.cfg.Server] + "/api/device/scan?token=" + url.QueryEscape(token)
}

package usecase

import (
	"context"

	"github.com/rozanhaisyam/wablas-api-bolt/domains/link"
	"github.com/skip2/go-qrcode"
)

// LinkService exposes the QR-link workflow to the UI layer.
type LinkService struct {
	linker link.ILinkUsecase
}

func NewLinkService(linker link.ILinkUsecase) *LinkService {
	return &LinkService{linker: linker}
}

func (s *LinkService) Generate(ctx context.Context) (link.Snapshot, error) {
	return s.linker.Generate(ctx)
}

func (s *LinkService) Snapshot() link.Snapshot {
	return s.linker.Snapshot()
}

func (s *LinkService) Reset() {
	s.linker.Reset()
}

// ScanURLImage renders the manual device-link URL of the active attempt as
// a QR PNG, so the alternative link stays scannable even when the
// gateway's own QR asset fails to load.
func (s *LinkService) ScanURLImage(size int) ([]byte, error) {
	snap := s.linker.Snapshot()
	if snap.Token == "" {
		return nil, link.ErrNoActiveLink
	}
	return qrcode.Encode(snap.ScanURL, qrcode.Medium, size)
}

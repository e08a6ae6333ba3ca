package octra

import (
	"context"
	"encoding/base64"
	"fmt"

	"owt/internal/crypto"
	"owt/internal/model"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// LoadWallet replaces the session identity with one derived from the
// base64-encoded 32-byte seed, discarding all cached ledger state.
func (s *Session) LoadWallet(encodedSeed string) (string, error) {
	seed, err := base64.StdEncoding.DecodeString(encodedSeed)
	if err != nil {
		return "", walletErrorf(CodeInvalidKeyMaterial, "invalid base64 private key: %v", err)
	}
	return s.LoadWalletSeed(seed)
}

// LoadWalletSeed replaces the session identity with one derived from the raw
// 32-byte seed.
func (s *Session) LoadWalletSeed(seed []byte) (string, error) {
	id, err := crypto.IdentityFromSeed(seed)
	if err != nil {
		return "", walletErrorf(CodeInvalidKeyMaterial, "wallet load error: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.adoptIdentityLocked(id)
	return id.Address, nil
}

// GenerateWallet creates a fresh random identity for the session and returns
// its seed, shown to the caller exactly once.
func (s *Session) GenerateWallet() (*model.GenerateResponse, error) {
	id, err := crypto.NewIdentity()
	if err != nil {
		return nil, fmt.Errorf("failed to generate wallet: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.adoptIdentityLocked(id)

	return &model.GenerateResponse{
		Status:     "wallet generated",
		Address:    id.Address,
		PrivateKey: id.SeedBase64(),
		PublicKey:  id.PublicKeyBase64(),
	}, nil
}

// adoptIdentityLocked installs a new identity and invalidates everything
// derived from the previous one.
//
// Caller must hold s.mu.
func (s *Session) adoptIdentityLocked(id *crypto.Identity) {
	if !crypto.ValidAddress(id.Address) {
		// advisory check: a mismatch points at a derivation bug, not an
		// unusable wallet
		s.logger.Warn("derived address does not match expected format",
			zap.String("address", id.Address))
	}

	s.identity = id
	s.nonce, s.balance = nil, nil
	s.state.Invalidate()
	s.history = nil
	s.historyAt.Invalidate()
}

// WalletData returns the loaded identity's persistable form for an encrypted
// backup file.
func (s *Session) WalletData(createdAt string) (*model.WalletData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil, ErrNoWallet
	}
	return &model.WalletData{
		Seed:      append([]byte(nil), s.identity.Seed...),
		CreatedAt: createdAt,
	}, nil
}

// Export returns the identity's key material together with a QR code of the
// address.
func (s *Session) Export() (*model.ExportResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil, ErrNoWallet
	}

	qr, err := addressQRCode(s.identity.Address)
	if err != nil {
		return nil, err
	}

	return &model.ExportResponse{
		Address:    s.identity.Address,
		PrivateKey: s.identity.SeedBase64(),
		PublicKey:  s.identity.PublicKeyBase64(),
		QR:         qr,
	}, nil
}

// WalletView assembles the caller-facing status view: refreshed balance and
// nonce, reconciled history and an opportunistic pending-transaction count.
func (s *Session) WalletView(ctx context.Context) (*model.WalletViewResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil, ErrNoWallet
	}

	nonce, balance := s.refreshLocked(ctx)
	s.refreshHistoryLocked(ctx)
	pending := s.pendingCountLocked(ctx)

	balanceText := "N/A"
	if balance != nil {
		balanceText = fmt.Sprintf("%.6f oct", *balance)
	}
	var noncePtr *uint64
	if nonce != nil {
		n := *nonce
		noncePtr = &n
	}

	transactions := make([]model.HistoryEntry, len(s.history))
	copy(transactions, s.history)

	return &model.WalletViewResponse{
		Address:      s.identity.Address,
		Balance:      balanceText,
		Nonce:        noncePtr,
		PublicKey:    s.identity.PublicKeyBase64(),
		PendingTxs:   pending,
		Transactions: transactions,
	}, nil
}

// addressQRCode renders the address as a base64-encoded PNG
func addressQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

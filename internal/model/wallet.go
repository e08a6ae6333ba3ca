package model

// LoadWalletRequest represents request for POST /api/load_wallet.
// Password is optional: when set and a wallet file path is configured, the
// loaded wallet is also written to an encrypted .owt backup.
type LoadWalletRequest struct {
	PrivateKey string `json:"private_key" binding:"required"`
	Password   string `json:"password,omitempty"`
}

// RestoreWalletRequest represents request for POST /api/restore_wallet
type RestoreWalletRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoadWalletResponse represents response for POST /api/load_wallet
type LoadWalletResponse struct {
	Status  string `json:"status"`
	Address string `json:"address"`
}

// GenerateResponse represents response for POST /api/generate
type GenerateResponse struct {
	Status     string `json:"status"`
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"` // base64 seed, shown once
	PublicKey  string `json:"public_key"`
}

// WalletViewResponse represents response for GET /api/wallet
type WalletViewResponse struct {
	Address      string         `json:"address"`
	Balance      string         `json:"balance"` // "<amount> oct" or "N/A" when unknown
	Nonce        *uint64        `json:"nonce"`   // null when unknown
	PublicKey    string         `json:"public_key"`
	PendingTxs   int            `json:"pending_txs"`
	Transactions []HistoryEntry `json:"transactions"`
}

// ExportResponse represents response for GET /api/export
type ExportResponse struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"` // base64 seed
	PublicKey  string `json:"public_key"`
	QR         string `json:"qr"` // base64 PNG of the address
}

// OWTFile represents .owt wallet backup file structure
type OWTFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	Seed      []byte `json:"seed"` // 32 bytes (stored as base64 in JSON)
	CreatedAt string `json:"createdAt"`
}

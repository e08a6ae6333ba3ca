package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"owt/internal/config"
	"owt/internal/crypto"
	"owt/internal/model"
	"owt/internal/session"
	"owt/octra"

	"go.uber.org/zap"
)

// WalletHandler serves the wallet session API
type WalletHandler struct {
	logger *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(logger *zap.Logger) *WalletHandler {
	return &WalletHandler{logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{
		Error: err.Error(),
		Code:  string(octra.CodeOf(err)),
	})
}

// statusForError maps wallet failures to HTTP statuses
func statusForError(err error) int {
	if errors.Is(err, octra.ErrNoWallet) {
		return http.StatusBadRequest
	}
	switch octra.CodeOf(err) {
	case octra.CodeInvalidAddress, octra.CodeInvalidAmount,
		octra.CodeInsufficientBalance, octra.CodeInvalidKeyMaterial,
		octra.CodeRemoteRejection:
		return http.StatusBadRequest
	case octra.CodeTransportFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// LoadWallet handles POST /api/load_wallet
// @Summary      Load wallet
// @Description  Loads a wallet from a base64-encoded 32-byte private key
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.LoadWalletRequest  true  "Private key"
// @Success      200      {object}  model.LoadWalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/load_wallet [post]
func (h *WalletHandler) LoadWallet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.LoadWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s := session.FromContext(r.Context())
	address, err := s.LoadWallet(req.PrivateKey)
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	// optional encrypted backup of the loaded wallet
	if path := config.GetWalletFilePath(); path != "" && req.Password != "" {
		data, err := s.WalletData(time.Now().Format(time.RFC3339))
		if err == nil {
			err = crypto.EncryptWallet(path, address, data, []byte(req.Password))
		}
		if err != nil {
			h.logger.Warn("failed to write wallet backup", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, model.LoadWalletResponse{
		Status:  "wallet loaded",
		Address: address,
	})
}

// RestoreWallet handles POST /api/restore_wallet
// @Summary      Restore wallet from backup
// @Description  Decrypts the configured .owt backup file and loads its wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.RestoreWalletRequest  true  "Backup password"
// @Success      200      {object}  model.LoadWalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/restore_wallet [post]
func (h *WalletHandler) RestoreWallet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	path := config.GetWalletFilePath()
	if path == "" {
		writeError(w, http.StatusBadRequest, errors.New("WALLET_FILE_PATH not set"))
		return
	}

	var req model.RestoreWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	password := []byte(req.Password)
	defer clear(password)

	_, data, err := crypto.DecryptWallet(path, password)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(data.Seed)

	s := session.FromContext(r.Context())
	address, err := s.LoadWalletSeed(data.Seed)
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, model.LoadWalletResponse{
		Status:  "wallet restored",
		Address: address,
	})
}

// Generate handles POST /api/generate
// @Summary      Generate new wallet
// @Description  Generates a fresh wallet identity for this session
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Router       /api/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	s := session.FromContext(r.Context())
	resp, err := s.GenerateWallet()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Wallet handles GET /api/wallet
// @Summary      Get wallet view
// @Description  Gets address, balance, nonce, pending count and the reconciled transaction log
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletViewResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /api/wallet [get]
func (h *WalletHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	s := session.FromContext(r.Context())
	view, err := s.WalletView(r.Context())
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Send handles POST /api/send
// @Summary      Send transfer
// @Description  Builds, signs and submits one transfer to the ledger
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Transfer data"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s := session.FromContext(r.Context())
	resp, err := s.Send(r.Context(), req.To, req.Amount)
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// MultiSend handles POST /api/multi-send
// @Summary      Send to many recipients
// @Description  Dispatches transfers to all recipients in groups of five with increasing nonces
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.MultiSendRequest  true  "Recipients"
// @Success      200      {object}  model.MultiSendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/multi-send [post]
func (h *WalletHandler) MultiSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.MultiSendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s := session.FromContext(r.Context())
	resp, err := s.MultiSend(r.Context(), req.Recipients)
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/export
// @Summary      Export wallet
// @Description  Returns the wallet's key material and a QR code of the address
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ExportResponse
// @Failure      400  {object}  model.ErrorResponse
// @Router       /api/export [get]
func (h *WalletHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	s := session.FromContext(r.Context())
	resp, err := s.Export()
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ClearHistory handles POST /api/clear_history
// @Summary      Clear transaction log
// @Description  Drops the session's local transaction log
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/clear_history [post]
func (h *WalletHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	s := session.FromContext(r.Context())
	s.ClearHistory()

	writeJSON(w, http.StatusOK, map[string]string{"status": "history cleared"})
}

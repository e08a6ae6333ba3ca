package api

import (
	"net/http"

	"owt/internal/handler"
	"owt/internal/session"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// sessionCookie carries the opaque session key that maps each caller to
// exactly one wallet session
const sessionCookie = "owt_session"

// SetupRouter sets up router with handlers
func SetupRouter(store *session.Store, logger *zap.Logger) http.Handler {
	walletHandler := handler.NewWalletHandler(logger)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/api/load_wallet", withSession(store, walletHandler.LoadWallet))
	mux.HandleFunc("/api/restore_wallet", withSession(store, walletHandler.RestoreWallet))
	mux.HandleFunc("/api/generate", withSession(store, walletHandler.Generate))
	mux.HandleFunc("/api/wallet", withSession(store, walletHandler.Wallet))
	mux.HandleFunc("/api/send", withSession(store, walletHandler.Send))
	mux.HandleFunc("/api/multi-send", withSession(store, walletHandler.MultiSend))
	mux.HandleFunc("/api/export", withSession(store, walletHandler.Export))
	mux.HandleFunc("/api/clear_history", withSession(store, walletHandler.ClearHistory))

	return mux
}

// withSession resolves the caller's session from the session cookie, issuing
// a new key when none is present, and attaches the session to the request
// context.
func withSession(store *session.Store, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := ""
		if c, err := r.Cookie(sessionCookie); err == nil {
			key = c.Value
		}
		if key == "" {
			key = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    key,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := session.NewContext(r.Context(), store.Get(key))
		next(w, r.WithContext(ctx))
	}
}

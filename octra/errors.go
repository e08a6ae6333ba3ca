package octra

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a wallet failure for the caller
type ErrorCode string

const (
	CodeInvalidAddress      ErrorCode = "INVALID_ADDRESS"
	CodeInvalidAmount       ErrorCode = "INVALID_AMOUNT"
	CodeInsufficientBalance ErrorCode = "INSUFFICIENT_BALANCE"
	CodeNonceUnavailable    ErrorCode = "NONCE_UNAVAILABLE"
	CodeTransportFailure    ErrorCode = "TRANSPORT_FAILURE"
	CodeRemoteRejection     ErrorCode = "REMOTE_REJECTION"
	CodeInvalidKeyMaterial  ErrorCode = "INVALID_KEY_MATERIAL"
)

// ErrNoWallet is returned by operations that require a loaded identity
var ErrNoWallet = errors.New("no wallet loaded")

// WalletError is a structured failure with a human-readable cause. A failed
// operation reports one of these and leaves the session's identity and cache
// intact.
type WalletError struct {
	Code    ErrorCode
	Message string
}

func (e *WalletError) Error() string {
	return e.Message
}

func walletErrorf(code ErrorCode, format string, args ...interface{}) *WalletError {
	return &WalletError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the error code from err, or "" for plain errors
func CodeOf(err error) ErrorCode {
	var we *WalletError
	if errors.As(err, &we) {
		return we.Code
	}
	return ""
}

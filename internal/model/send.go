package model

// SendRequest represents request for POST /api/send
type SendRequest struct {
	To     string  `json:"to" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// SendResponse represents response for POST /api/send
type SendResponse struct {
	Status   string `json:"status"`
	TxHash   string `json:"tx_hash"`
	Time     string `json:"time"` // elapsed submit time, e.g. "0.42s"
	PoolSize int    `json:"pool_size"`
}

// Recipient is one entry of a multi-send request
type Recipient struct {
	To     string  `json:"to" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// MultiSendRequest represents request for POST /api/multi-send
type MultiSendRequest struct {
	Recipients []Recipient `json:"recipients" binding:"required"`
}

// MultiSendResult is the independent outcome for one recipient
type MultiSendResult struct {
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
	Nonce  uint64  `json:"nonce"`
	OK     bool    `json:"ok"`
	TxHash string  `json:"tx_hash,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// MultiSendResponse represents response for POST /api/multi-send
type MultiSendResponse struct {
	SuccessCount int               `json:"success_count"`
	FailureCount int               `json:"failure_count"`
	Results      []MultiSendResult `json:"results"`
}

package model

import "time"

// Direction marks a transfer relative to the wallet's own address
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// HistoryEntry represents one transaction in the wallet's reconciled log.
// Hash is the unique key within the log.
type HistoryEntry struct {
	Time         time.Time `json:"time"`
	Hash         string    `json:"hash"`
	Amount       float64   `json:"amt"`
	Counterparty string    `json:"to"`
	Direction    Direction `json:"type"`
	Confirmed    bool      `json:"ok"`
	Nonce        uint64    `json:"nonce,omitempty"`
	Epoch        uint64    `json:"epoch,omitempty"`
}

package entities

import (
	"fmt"

	"github.com/ravjot07/TxGraph/domain/core/valueobjects"
)

// Transaction is an event-like node of the collaborator graph
type Transaction struct {
	ID          int64   `json:"id"`
	FromUserID  int64   `json:"fromUserId"`
	ToUserID    int64   `json:"toUserId"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Timestamp   string  `json:"timestamp"`
	Description string  `json:"description"`
	DeviceID    string  `json:"deviceId"`
}

// Key derives the transaction's stable cross-kind entity key
func (t Transaction) Key() valueobjects.EntityKey {
	return valueobjects.MustEntityKey(valueobjects.KindTransaction, t.ID)
}

// DisplayLabel returns the label rendered for the transaction's graph
// node. A missing device id degrades the label, it never fails.
func (t Transaction) DisplayLabel() string {
	return TransactionLabel(t.ID, t.DeviceID)
}

// TransactionLabel builds the canonical transaction node label from the
// numeric id and an optional device id
func TransactionLabel(id int64, deviceID string) string {
	if deviceID != "" {
		return fmt.Sprintf("Txn #%d (%s)", id, deviceID)
	}
	return fmt.Sprintf("Txn #%d", id)
}

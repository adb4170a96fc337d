package queries

import (
	"time"

	"github.com/ravjot07/TxGraph/domain/core/entities"
)

// UserFilter is the declarative filter for the users table: one query
// matched against name, email and phone
type UserFilter struct {
	Query string `json:"query,omitempty"`
}

// Spec builds the filter spec for the users table
func (f UserFilter) Spec() FilterSpec[entities.User] {
	return FilterSpec[entities.User]{}.
		Where("query", ContainsAny(f.Query,
			func(u entities.User) string { return u.Name },
			func(u entities.User) string { return u.Email },
			func(u entities.User) string { return u.Phone },
		))
}

// TransactionFilter is the declarative filter for the transactions
// table. Zero-valued fields filter nothing.
type TransactionFilter struct {
	MinAmount   *float64   `json:"min_amount,omitempty"`
	MaxAmount   *float64   `json:"max_amount,omitempty"`
	Currency    string     `json:"currency,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description,omitempty"`
	DeviceID    string     `json:"device_id,omitempty"`
}

// Spec builds the filter spec for the transactions table
func (f TransactionFilter) Spec() FilterSpec[entities.Transaction] {
	return FilterSpec[entities.Transaction]{}.
		Where("minAmount", AtLeast(f.MinAmount, transactionAmount)).
		Where("maxAmount", AtMost(f.MaxAmount, transactionAmount)).
		Where("currency", Equals(f.Currency, func(t entities.Transaction) string { return t.Currency })).
		Where("startDate", OnOrAfter(f.StartDate, transactionTime)).
		Where("endDate", OnOrBefore(f.EndDate, transactionTime)).
		Where("description", Contains(f.Description, func(t entities.Transaction) string { return t.Description })).
		Where("deviceId", Contains(f.DeviceID, func(t entities.Transaction) string { return t.DeviceID }))
}

// ClusterFilter is the declarative filter over cluster assignments.
// Both id filters match on string containment to support partial-id
// search.
type ClusterFilter struct {
	TransactionID string `json:"transaction_id,omitempty"`
	ClusterID     string `json:"cluster_id,omitempty"`
}

// Spec builds the filter spec for the cluster-assignment table
func (f ClusterFilter) Spec() FilterSpec[entities.ClusterAssignment] {
	return FilterSpec[entities.ClusterAssignment]{}.
		Where("transactionId", IDContains(f.TransactionID, func(c entities.ClusterAssignment) int64 { return c.TransactionID })).
		Where("clusterId", IDContains(f.ClusterID, func(c entities.ClusterAssignment) int64 { return c.ClusterID }))
}

func transactionAmount(t entities.Transaction) float64 {
	return t.Amount
}

// transactionTime parses the wire timestamp; filtering on a date bound
// excludes rows whose timestamp does not parse
func transactionTime(t entities.Transaction) (time.Time, bool) {
	ts, err := time.Parse(time.RFC3339, t.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

package queries

import "github.com/ravjot07/TxGraph/pkg/common"

// View state records are explicit, serializable snapshots of the
// client-held UI state (current filter, current page) passed into pure
// filter and pagination calls. No global mutable state.

// UserListState is the view state of the users table
type UserListState struct {
	Filter   UserFilter `json:"filter"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// NewUserListState returns the initial users-table state
func NewUserListState() UserListState {
	return UserListState{Page: 1, PageSize: common.DefaultPageSize}
}

// WithFilter returns the state with a new filter and the page reset to
// the first, per the view contract
func (s UserListState) WithFilter(filter UserFilter) UserListState {
	s.Filter = filter
	s.Page = 1
	return s
}

// WithPage returns the state with a new requested page
func (s UserListState) WithPage(page int) UserListState {
	s.Page = page
	return s
}

// WithPageSize returns the state with a new page size and the page
// reset to the first
func (s UserListState) WithPageSize(size int) UserListState {
	s.PageSize = size
	s.Page = 1
	return s
}

// TransactionListState is the view state of the transactions table
type TransactionListState struct {
	Filter   TransactionFilter `json:"filter"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// NewTransactionListState returns the initial transactions-table state
func NewTransactionListState() TransactionListState {
	return TransactionListState{Page: 1, PageSize: common.DefaultPageSize}
}

// WithFilter returns the state with a new filter and the page reset
func (s TransactionListState) WithFilter(filter TransactionFilter) TransactionListState {
	s.Filter = filter
	s.Page = 1
	return s
}

// WithPage returns the state with a new requested page
func (s TransactionListState) WithPage(page int) TransactionListState {
	s.Page = page
	return s
}

// WithPageSize returns the state with a new page size and the page reset
func (s TransactionListState) WithPageSize(size int) TransactionListState {
	s.PageSize = size
	s.Page = 1
	return s
}

// ClusterViewState is the view state of the cluster-assignment table
type ClusterViewState struct {
	Filter   ClusterFilter `json:"filter"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// NewClusterViewState returns the initial cluster-view state
func NewClusterViewState() ClusterViewState {
	return ClusterViewState{Page: 1, PageSize: common.DefaultPageSize}
}

// WithFilter returns the state with a new filter and the page reset
func (s ClusterViewState) WithFilter(filter ClusterFilter) ClusterViewState {
	s.Filter = filter
	s.Page = 1
	return s
}

// WithPage returns the state with a new requested page
func (s ClusterViewState) WithPage(page int) ClusterViewState {
	s.Page = page
	return s
}

// WithPageSize returns the state with a new page size and the page reset
func (s ClusterViewState) WithPageSize(size int) ClusterViewState {
	s.PageSize = size
	s.Page = 1
	return s
}

package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/ravjot07/TxGraph/application/ports"
	"github.com/ravjot07/TxGraph/application/queries"
	"github.com/ravjot07/TxGraph/domain/core/entities"
	"github.com/ravjot07/TxGraph/pkg/common"
)

// ListViewService backs the users and transactions tables. Collections
// are fetched fresh on activation, held in memory for the active view
// and discarded on navigation away; filtering and pagination are pure
// calls over them, driven by explicit view-state records.
type ListViewService struct {
	api    ports.GraphAPI
	logger *zap.Logger

	users        []entities.User
	transactions []entities.Transaction
}

// NewListViewService creates a list view service
func NewListViewService(api ports.GraphAPI, logger *zap.Logger) *ListViewService {
	return &ListViewService{api: api, logger: logger}
}

// Activate fetches both collections for the view. On failure the
// service holds empty collections and the error is surfaced to the
// caller as a fetch error.
func (s *ListViewService) Activate(ctx context.Context) error {
	s.Deactivate()

	users, err := s.api.Users(ctx)
	if err != nil {
		s.logger.Error("user list fetch failed", zap.Error(err))
		return err
	}

	transactions, err := s.api.Transactions(ctx)
	if err != nil {
		s.logger.Error("transaction list fetch failed", zap.Error(err))
		return err
	}

	s.users = users
	s.transactions = transactions
	s.logger.Info("lists activated",
		zap.Int("users", len(users)),
		zap.Int("transactions", len(transactions)),
	)
	return nil
}

// Deactivate discards the held collections
func (s *ListViewService) Deactivate() {
	s.users = nil
	s.transactions = nil
}

// Users returns the requested page of the filtered users table
func (s *ListViewService) Users(state queries.UserListState) common.Page[entities.User] {
	filtered := state.Filter.Spec().Apply(s.users)
	return common.Paginate(filtered, state.Page, state.PageSize)
}

// Transactions returns the requested page of the filtered transactions
// table
func (s *ListViewService) Transactions(state queries.TransactionListState) common.Page[entities.Transaction] {
	filtered := state.Filter.Spec().Apply(s.transactions)
	return common.Paginate(filtered, state.Page, state.PageSize)
}

// Currencies returns the distinct currencies of the held transactions,
// sorted, for the currency selector
func (s *ListViewService) Currencies() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range s.transactions {
		if _, ok := seen[t.Currency]; ok {
			continue
		}
		seen[t.Currency] = struct{}{}
		out = append(out, t.Currency)
	}
	sort.Strings(out)
	return out
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ravjot07/TxGraph/application/queries"
	"github.com/ravjot07/TxGraph/domain/core/entities"
	pkgerrors "github.com/ravjot07/TxGraph/pkg/errors"
)

func listFixture(t *testing.T) *ListViewService {
	t.Helper()

	api := &fakeAPI{
		users: []entities.User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
			{ID: 3, Name: "Carol", Email: "carol@example.com"},
			{ID: 4, Name: "Dave", Email: "dave@example.com"},
			{ID: 5, Name: "Erin", Email: "erin@example.com"},
			{ID: 6, Name: "Frank", Email: "frank@example.com"},
		},
		transactions: []entities.Transaction{
			{ID: 1, Amount: 50, Currency: "USD"},
			{ID: 2, Amount: 150, Currency: "EUR"},
			{ID: 3, Amount: 250, Currency: "USD"},
		},
	}

	svc := NewListViewService(api, zap.NewNop())
	require.NoError(t, svc.Activate(context.Background()))
	return svc
}

func TestListViewUsersPagination(t *testing.T) {
	svc := listFixture(t)

	state := queries.NewUserListState().WithPageSize(5)
	page := svc.Users(state)

	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 6, page.TotalItems)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "Alice", page.Items[0].Name)

	page = svc.Users(state.WithPage(2))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Frank", page.Items[0].Name)
}

func TestListViewFilterChangeResetsPage(t *testing.T) {
	svc := listFixture(t)

	state := queries.NewUserListState().WithPageSize(5).WithPage(2)
	require.Len(t, svc.Users(state).Items, 1)

	// Typing a new query resets to the first page of the narrowed set.
	state = state.WithFilter(queries.UserFilter{Query: "example.com"})
	page := svc.Users(state)

	assert.Equal(t, 1, page.PageNumber)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "Alice", page.Items[0].Name)
}

func TestListViewPageSizeChangeResetsPage(t *testing.T) {
	svc := listFixture(t)

	state := queries.NewUserListState().WithPageSize(2).WithPage(3)
	require.Equal(t, 3, svc.Users(state).PageNumber)

	state = state.WithPageSize(5)
	assert.Equal(t, 1, svc.Users(state).PageNumber)
}

func TestListViewTransactionsFiltered(t *testing.T) {
	svc := listFixture(t)

	min := 100.0
	state := queries.NewTransactionListState().
		WithFilter(queries.TransactionFilter{MinAmount: &min})

	page := svc.Transactions(state)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Items[0].ID)
	assert.Equal(t, int64(3), page.Items[1].ID)
}

func TestListViewCurrencies(t *testing.T) {
	svc := listFixture(t)
	assert.Equal(t, []string{"EUR", "USD"}, svc.Currencies())
}

func TestListViewActivateFailure(t *testing.T) {
	api := &fakeAPI{err: pkgerrors.NewFetchError("api down", nil)}
	svc := NewListViewService(api, zap.NewNop())

	err := svc.Activate(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsFetch(err))

	assert.Empty(t, svc.Users(queries.NewUserListState()).Items)
	assert.Empty(t, svc.Currencies())
}

func TestListViewDeactivateDiscards(t *testing.T) {
	svc := listFixture(t)
	svc.Deactivate()

	page := svc.Users(queries.NewUserListState())
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

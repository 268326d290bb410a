package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/dtos"
	"github.com/bracurobu/traction-intake/internal/models"
	"github.com/bracurobu/traction-intake/internal/upstream"
)

type mockLister struct {
	page      *models.ListPage
	err       error
	lastPage  int
	lastToken string
}

func (m *mockLister) ListApplicants(_ context.Context, token string, page int) (*models.ListPage, error) {
	m.lastToken = token
	m.lastPage = page
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

func applicant(id, email string) models.Applicant {
	return models.Applicant{StudentID: id, Name: "x", PersonalEmail: email}
}

func TestFetchPage_ReplacesStateWholesale(t *testing.T) {
	lister := &mockLister{page: &models.ListPage{
		Items:   []models.Applicant{applicant("23201123", "a@gmail.com")},
		Total:   120,
		Page:    2,
		PerPage: 50,
	}}
	svc := NewListingService(lister, zap.NewNop())

	resp, err := svc.FetchPage(context.Background(), "tok-1", &dtos.ListQuery{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", lister.lastToken)
	assert.Equal(t, 2, lister.lastPage)
	assert.Equal(t, 120, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 50, resp.PerPage)
	assert.Len(t, resp.Items, 1)
}

func TestFetchPage_LastPageIsCeil(t *testing.T) {
	tests := []struct {
		total, want int
	}{
		{0, 1},
		{1, 1},
		{50, 1},
		{51, 2},
		{101, 3},
	}

	for _, tt := range tests {
		lister := &mockLister{page: &models.ListPage{Total: tt.total, Page: 1, PerPage: 50}}
		svc := NewListingService(lister, zap.NewNop())

		resp, err := svc.FetchPage(context.Background(), "t", &dtos.ListQuery{Page: 1})
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.LastPage, "total=%d", tt.total)
	}
}

func TestFetchPage_PageFloorsAtOne(t *testing.T) {
	lister := &mockLister{page: &models.ListPage{Page: 1, PerPage: 50}}
	svc := NewListingService(lister, zap.NewNop())

	_, err := svc.FetchPage(context.Background(), "t", &dtos.ListQuery{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, lister.lastPage)
}

func TestFetchPage_UnauthorizedPassesThrough(t *testing.T) {
	lister := &mockLister{err: upstream.ErrUnauthorized}
	svc := NewListingService(lister, zap.NewNop())

	resp, err := svc.FetchPage(context.Background(), "stale", &dtos.ListQuery{Page: 1})
	assert.Nil(t, resp, "no stale data on a rejected token")
	assert.ErrorIs(t, err, upstream.ErrUnauthorized)
}

func TestFetchPage_SortOnIdentifierColumn(t *testing.T) {
	items := []models.Applicant{
		applicant("23301999", "c@gmail.com"),
		applicant("22101001", "a@gmail.com"),
		applicant("23201123", "b@gmail.com"),
	}
	lister := &mockLister{page: &models.ListPage{Items: items, Total: 3, Page: 1, PerPage: 50}}
	svc := NewListingService(lister, zap.NewNop())

	resp, err := svc.FetchPage(context.Background(), "t", &dtos.ListQuery{Page: 1, Sort: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "22101001", resp.Items[0].StudentID)
	assert.Equal(t, "23301999", resp.Items[2].StudentID)

	resp, err = svc.FetchPage(context.Background(), "t", &dtos.ListQuery{Page: 1, Sort: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "23301999", resp.Items[0].StudentID)
	assert.Equal(t, "22101001", resp.Items[2].StudentID)

	// The upstream order is untouched when no sort is requested.
	resp, err = svc.FetchPage(context.Background(), "t", &dtos.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, "23301999", resp.Items[0].StudentID)
}

func TestFetchPage_EmailFilterIsSubstringOnLoadedPage(t *testing.T) {
	items := []models.Applicant{
		applicant("1", "rahim@gmail.com"),
		applicant("2", "karim@yahoo.com"),
		applicant("3", "Rahima@Gmail.com"),
	}
	lister := &mockLister{page: &models.ListPage{Items: items, Total: 3, Page: 1, PerPage: 50}}
	svc := NewListingService(lister, zap.NewNop())

	resp, err := svc.FetchPage(context.Background(), "t", &dtos.ListQuery{Page: 1, Email: "rahim"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2, "filter is case-insensitive substring")

	// Pagination metadata still reflects the upstream page, not the filter.
	assert.Equal(t, 3, resp.Total)
}

func TestFetchPage_NilItemsBecomeEmptySlice(t *testing.T) {
	lister := &mockLister{page: &models.ListPage{Items: nil, Total: 0, Page: 1, PerPage: 50}}
	svc := NewListingService(lister, zap.NewNop())

	resp, err := svc.FetchPage(context.Background(), "t", &dtos.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

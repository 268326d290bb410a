package services

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/dtos"
	"github.com/bracurobu/traction-intake/internal/models"
)

// ApplicantLister is the one upstream call the listing flow makes.
type ApplicantLister interface {
	ListApplicants(ctx context.Context, token string, page int) (*models.ListPage, error)
}

// ListingService fetches one page per request and applies the dashboard view
// parameters (sort, email filter) over that page only. State is never merged
// across pages.
type ListingService struct {
	client ApplicantLister
	logger *zap.Logger
}

func NewListingService(client ApplicantLister, logger *zap.Logger) *ListingService {
	return &ListingService{client: client, logger: logger}
}

// FetchPage replaces the whole page state from the upstream response.
// upstream.ErrUnauthorized passes through untouched so the handler can drop
// the session and bounce to login.
func (s *ListingService) FetchPage(ctx context.Context, token string, q *dtos.ListQuery) (*dtos.ListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	listPage, err := s.client.ListApplicants(ctx, token, page)
	if err != nil {
		return nil, err
	}

	perPage := listPage.PerPage
	if perPage <= 0 {
		perPage = models.PerPage
	}
	lastPage := (listPage.Total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	items := applyView(listPage.Items, q)
	if items == nil {
		items = []models.Applicant{}
	}

	return &dtos.ListResponse{
		Items:    items,
		Total:    listPage.Total,
		Page:     listPage.Page,
		PerPage:  perPage,
		LastPage: lastPage,
	}, nil
}

// applyView filters on the personal-email column (case-insensitive substring)
// and sorts on the identifier column. Both act on the loaded page only.
func applyView(items []models.Applicant, q *dtos.ListQuery) []models.Applicant {
	out := items
	if q.Email != "" {
		needle := strings.ToLower(q.Email)
		out = make([]models.Applicant, 0, len(items))
		for _, a := range items {
			if strings.Contains(strings.ToLower(a.PersonalEmail), needle) {
				out = append(out, a)
			}
		}
	}

	switch q.Sort {
	case "asc":
		out = sortedCopy(out, func(a, b models.Applicant) bool { return a.StudentID < b.StudentID })
	case "desc":
		out = sortedCopy(out, func(a, b models.Applicant) bool { return a.StudentID > b.StudentID })
	}
	return out
}

func sortedCopy(items []models.Applicant, less func(a, b models.Applicant) bool) []models.Applicant {
	out := make([]models.Applicant, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

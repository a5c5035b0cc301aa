package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"resumatch/api/internal/models"
)

// ScorecardService searches the College Scorecard institution catalog. The
// admissions estimator only consumes the admission-rate field of a record;
// everything else is returned for display.
type ScorecardService interface {
	Search(ctx context.Context, query string, page int) (*models.CollegeSearchResult, error)
}

type scorecardService struct {
	client  *resty.Client
	apiKey  string
	perPage int
}

const scorecardFields = "school.name,school.city,school.state,school.school_url," +
	"latest.admissions.admission_rate.overall," +
	"latest.cost.tuition.in_state,latest.cost.tuition.out_of_state," +
	"latest.cost.roomboard.oncampus,latest.cost.booksupply," +
	"latest.cost.otherexpense.oncampus"

func NewScorecardService(baseURL, apiKey string, timeout time.Duration, perPage int) ScorecardService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &scorecardService{
		client:  client,
		apiKey:  apiKey,
		perPage: perPage,
	}
}

// The catalog API returns flat records keyed by dotted field paths.
type scorecardRecord struct {
	Name          string   `json:"school.name"`
	City          string   `json:"school.city"`
	State         string   `json:"school.state"`
	URL           string   `json:"school.school_url"`
	AdmissionRate *float64 `json:"latest.admissions.admission_rate.overall"`
	TuitionIn     *float64 `json:"latest.cost.tuition.in_state"`
	TuitionOut    *float64 `json:"latest.cost.tuition.out_of_state"`
	RoomBoard     *float64 `json:"latest.cost.roomboard.oncampus"`
	BookCost      *float64 `json:"latest.cost.booksupply"`
	OtherCost     *float64 `json:"latest.cost.otherexpense.oncampus"`
}

type scorecardResponse struct {
	Metadata struct {
		Total   int `json:"total"`
		Page    int `json:"page"`
		PerPage int `json:"per_page"`
	} `json:"metadata"`
	Results []scorecardRecord `json:"results"`
}

// Search runs one paginated name query against the catalog. Failures come
// back as recoverable errors for the handler to surface; they never take the
// application down.
func (s *scorecardService) Search(ctx context.Context, query string, page int) (*models.CollegeSearchResult, error) {
	if page < 0 {
		page = 0
	}

	var result scorecardResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":     s.apiKey,
			"school.name": query,
			"fields":      scorecardFields,
			"page":        strconv.Itoa(page),
			"per_page":    strconv.Itoa(s.perPage),
		}).
		SetResult(&result).
		Get("/schools")
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog search failed: %s", resp.Status())
	}

	colleges := make([]models.College, 0, len(result.Results))
	for _, record := range result.Results {
		colleges = append(colleges, models.College{
			Name:            record.Name,
			City:            record.City,
			State:           record.State,
			URL:             record.URL,
			TuitionInState:  record.TuitionIn,
			TuitionOutState: record.TuitionOut,
			RoomBoard:       record.RoomBoard,
			BookCost:        record.BookCost,
			OtherCost:       record.OtherCost,
			AdmissionRate:   record.AdmissionRate,
		})
	}

	return &models.CollegeSearchResult{
		Page:     result.Metadata.Page,
		PerPage:  result.Metadata.PerPage,
		Total:    result.Metadata.Total,
		Colleges: colleges,
	}, nil
}

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scorecardFixture = `{
	"metadata": {"total": 1, "page": 0, "per_page": 20},
	"results": [{
		"school.name": "State University",
		"school.city": "Springfield",
		"school.state": "IL",
		"school.school_url": "www.state.edu",
		"latest.admissions.admission_rate.overall": 0.62,
		"latest.cost.tuition.in_state": 11000,
		"latest.cost.tuition.out_of_state": 29000,
		"latest.cost.roomboard.oncampus": 12000,
		"latest.cost.booksupply": 1200,
		"latest.cost.otherexpense.oncampus": 3000
	}]
}`

func TestScorecardSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schools", r.URL.Path)
		assert.Equal(t, "State", r.URL.Query().Get("school.name"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(scorecardFixture))
	}))
	defer server.Close()

	s := NewScorecardService(server.URL, "test-key", 5*time.Second, 20)

	result, err := s.Search(context.Background(), "State", 0)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Colleges, 1)

	college := result.Colleges[0]
	assert.Equal(t, "State University", college.Name)
	assert.Equal(t, "Springfield", college.City)
	assert.Equal(t, "IL", college.State)
	require.NotNil(t, college.AdmissionRate)
	assert.InDelta(t, 0.62, *college.AdmissionRate, 1e-9)
	require.NotNil(t, college.TuitionInState)
	assert.Equal(t, 11000.0, *college.TuitionInState)
}

func TestScorecardSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	s := NewScorecardService(server.URL, "bad-key", 5*time.Second, 20)

	_, err := s.Search(context.Background(), "State", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog search failed")
}

func TestScorecardSearch_MissingRecordFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"metadata": {"total": 1, "page": 0, "per_page": 20},
			"results": [{"school.name": "Tiny College"}]}`))
	}))
	defer server.Close()

	s := NewScorecardService(server.URL, "test-key", 5*time.Second, 20)

	result, err := s.Search(context.Background(), "Tiny", 0)
	require.NoError(t, err)
	require.Len(t, result.Colleges, 1)

	// Absent numeric fields stay nil instead of defaulting to zero.
	assert.Nil(t, result.Colleges[0].AdmissionRate)
	assert.Nil(t, result.Colleges[0].TuitionInState)
}

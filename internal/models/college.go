package models

// College is one institution record from the catalog search. The admissions
// estimator consumes only AdmissionRate; the rest is passthrough for the
// caller.
type College struct {
	Name            string   `json:"name"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	URL             string   `json:"url"`
	TuitionInState  *float64 `json:"tuition_in_state,omitempty"`
	TuitionOutState *float64 `json:"tuition_out_of_state,omitempty"`
	RoomBoard       *float64 `json:"room_board,omitempty"`
	BookCost        *float64 `json:"book_cost,omitempty"`
	OtherCost       *float64 `json:"other_cost,omitempty"`
	AdmissionRate   *float64 `json:"admission_rate,omitempty"`
}

type CollegeSearchResult struct {
	Page     int       `json:"page"`
	PerPage  int       `json:"per_page"`
	Total    int       `json:"total"`
	Colleges []College `json:"colleges"`
}

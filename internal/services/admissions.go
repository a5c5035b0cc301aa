package services

// AcceptanceInput carries the signals blended into an adjusted acceptance
// probability. BaselineRate is the population admission rate for the target
// institution; GRE and IELTS are optional and contribute nothing when absent.
type AcceptanceInput struct {
	BaselineRate    *float64
	CGPA            float64
	GRE             *float64
	IELTS           *float64
	DocumentQuality float64
}

type AdmissionService interface {
	Estimate(in AcceptanceInput) float64
}

type admissionService struct{}

func NewAdmissionService() AdmissionService {
	return &admissionService{}
}

// Midpoints and spreads used to normalize each academic signal into a
// deviation in [-1,1].
const (
	cgpaMid    = 3.0
	cgpaSpread = 1.0

	greMid    = 310.0
	greSpread = 30.0

	ieltsMid    = 6.5
	ieltsSpread = 2.5
)

// Signal weights for the additive blend around the baseline prior.
const (
	cgpaWeight  = 0.15
	greWeight   = 0.10
	ieltsWeight = 0.05
	docWeight   = 0.10
)

// Estimate blends the baseline admission rate with the applicant's academic
// metrics and a document-quality score into an adjusted probability.
//
// The blend is additive around the prior: each signal is normalized to a
// deviation in [-1,1] from a reference midpoint, scaled by a fixed weight,
// and added to the baseline rate (0.5 when no baseline is supplied). Missing
// GRE or IELTS contributes zero adjustment. Because every weight is positive
// and every normalization is monotone, a higher CGPA, GRE, IELTS, or
// document quality never lowers the output. The result is always clamped to
// [0,1].
func (a *admissionService) Estimate(in AcceptanceInput) float64 {
	base := 0.5
	if in.BaselineRate != nil {
		base = clamp01(*in.BaselineRate)
	}

	p := base
	p += cgpaWeight * deviation(in.CGPA, cgpaMid, cgpaSpread)
	if in.GRE != nil {
		p += greWeight * deviation(*in.GRE, greMid, greSpread)
	}
	if in.IELTS != nil {
		p += ieltsWeight * deviation(*in.IELTS, ieltsMid, ieltsSpread)
	}
	p += docWeight * clampRange(2*(in.DocumentQuality-0.5), -1, 1)

	return clamp01(p)
}

func deviation(value, mid, spread float64) float64 {
	return clampRange((value-mid)/spread, -1, 1)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

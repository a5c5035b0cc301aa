package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestEstimate_AlwaysInUnitInterval(t *testing.T) {
	a := NewAdmissionService()

	baselines := []*float64{nil, floatPtr(0), floatPtr(0.07), floatPtr(0.5), floatPtr(1)}
	cgpas := []float64{0, 2, 3, 4}
	gres := []*float64{nil, floatPtr(0), floatPtr(170), floatPtr(310), floatPtr(340)}
	ieltss := []*float64{nil, floatPtr(0), floatPtr(4.5), floatPtr(6.5), floatPtr(9)}
	qualities := []float64{0, 0.25, 0.5, 1}

	for _, base := range baselines {
		for _, cgpa := range cgpas {
			for _, gre := range gres {
				for _, ielts := range ieltss {
					for _, quality := range qualities {
						p := a.Estimate(AcceptanceInput{
							BaselineRate:    base,
							CGPA:            cgpa,
							GRE:             gre,
							IELTS:           ielts,
							DocumentQuality: quality,
						})
						assert.GreaterOrEqual(t, p, 0.0)
						assert.LessOrEqual(t, p, 1.0)
					}
				}
			}
		}
	}
}

func TestEstimate_Monotonicity(t *testing.T) {
	a := NewAdmissionService()

	base := AcceptanceInput{
		BaselineRate:    floatPtr(0.4),
		CGPA:            3.0,
		GRE:             floatPtr(310),
		IELTS:           floatPtr(6.5),
		DocumentQuality: 0.5,
	}
	reference := a.Estimate(base)

	t.Run("higher CGPA never decreases output", func(t *testing.T) {
		better := base
		better.CGPA = 3.9
		assert.GreaterOrEqual(t, a.Estimate(better), reference)
	})

	t.Run("higher GRE never decreases output", func(t *testing.T) {
		better := base
		better.GRE = floatPtr(335)
		assert.GreaterOrEqual(t, a.Estimate(better), reference)
	})

	t.Run("higher IELTS never decreases output", func(t *testing.T) {
		better := base
		better.IELTS = floatPtr(8.5)
		assert.GreaterOrEqual(t, a.Estimate(better), reference)
	})

	t.Run("higher document quality never decreases output", func(t *testing.T) {
		better := base
		better.DocumentQuality = 1.0
		assert.GreaterOrEqual(t, a.Estimate(better), reference)
	})

	t.Run("higher baseline never decreases output", func(t *testing.T) {
		better := base
		better.BaselineRate = floatPtr(0.8)
		assert.GreaterOrEqual(t, a.Estimate(better), reference)
	})
}

func TestEstimate_OptionalSignals(t *testing.T) {
	a := NewAdmissionService()

	t.Run("all optionals absent still yields valid output", func(t *testing.T) {
		p := a.Estimate(AcceptanceInput{CGPA: 3.2, DocumentQuality: 0.5})
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	})

	t.Run("absent baseline defaults to neutral prior", func(t *testing.T) {
		neutral := a.Estimate(AcceptanceInput{CGPA: 3.0, DocumentQuality: 0.5})
		assert.InDelta(t, 0.5, neutral, 1e-9)
	})

	t.Run("absent GRE matches midpoint GRE", func(t *testing.T) {
		withMid := a.Estimate(AcceptanceInput{
			CGPA: 3.0, GRE: floatPtr(310), DocumentQuality: 0.5,
		})
		without := a.Estimate(AcceptanceInput{CGPA: 3.0, DocumentQuality: 0.5})
		assert.InDelta(t, withMid, without, 1e-9)
	})

	t.Run("absent IELTS matches midpoint IELTS", func(t *testing.T) {
		withMid := a.Estimate(AcceptanceInput{
			CGPA: 3.0, IELTS: floatPtr(6.5), DocumentQuality: 0.5,
		})
		without := a.Estimate(AcceptanceInput{CGPA: 3.0, DocumentQuality: 0.5})
		assert.InDelta(t, withMid, without, 1e-9)
	})
}

func TestEstimate_BaselineAnchorsOutput(t *testing.T) {
	a := NewAdmissionService()

	selective := a.Estimate(AcceptanceInput{
		BaselineRate:    floatPtr(0.05),
		CGPA:            3.0,
		DocumentQuality: 0.5,
	})
	open := a.Estimate(AcceptanceInput{
		BaselineRate:    floatPtr(0.9),
		CGPA:            3.0,
		DocumentQuality: 0.5,
	})

	assert.Less(t, selective, open)
	assert.InDelta(t, 0.05, selective, 1e-9)
	assert.InDelta(t, 0.9, open, 1e-9)
}

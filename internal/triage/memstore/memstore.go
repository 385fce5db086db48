// Package memstore provides an in-memory implementation of triage.Store.
package memstore

import (
	"context"
	"sync"

	"github.com/linnemanlabs/intake/internal/triage"
)

// Store holds assessments in memory. Suitable for dev/testing.
type Store struct {
	mu          sync.RWMutex
	assessments map[string]*triage.Assessment // assessment ID -> assessment
}

// New initializes a new in-memory Store.
func New() *Store {
	return &Store{
		assessments: make(map[string]*triage.Assessment),
	}
}

// Get retrieves an assessment by its ID. Returns a copy.
func (s *Store) Get(_ context.Context, id string) (*triage.Assessment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[id]
	if !ok {
		return nil, false, nil
	}
	cp := *a
	return &cp, true, nil
}

// Put stores a copy of the assessment.
func (s *Store) Put(_ context.Context, a *triage.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.assessments[a.ID] = &cp
	return nil
}

// Analytics summarizes everything currently stored.
func (s *Store) Analytics(_ context.Context) (*triage.AnalyticsReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rep := &triage.AnalyticsReport{
		ByDepartment: make(map[string]int),
		ByRiskLevel:  make(map[string]int),
	}
	for _, a := range s.assessments {
		rep.TotalAssessments++
		if a.Result.RiskLevel == triage.RiskHigh {
			rep.HighRisk++
		}
		rep.ByDepartment[string(a.Result.Department)]++
		rep.ByRiskLevel[string(a.Result.RiskLevel)]++
	}
	return rep, nil
}

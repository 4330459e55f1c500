package application

import (
	"sync"

	"github.com/docsgov/docsgov/internal/domain"
)

// GateService orchestrates the change-set gates:
// diff → classify against policy patterns → contract gate + drift detector.
type GateService struct {
	lister domain.ChangeLister
}

func NewGateService(lister domain.ChangeLister) *GateService {
	return &GateService{lister: lister}
}

// GateResult bundles both gate outcomes for one change set.
type GateResult struct {
	Contract domain.ContractViolation
	Drift    domain.DriftReport
}

// Check diffs baseRef..headRef once and evaluates both gates over the
// shared classification. Both evaluators are pure, so they run in
// parallel without coordination beyond the join.
func (s *GateService) Check(pack domain.PolicyPack, repoPath, baseRef, headRef string) (GateResult, error) {
	files, err := s.lister.Changes(repoPath, baseRef, headRef)
	if err != nil {
		return GateResult{}, err
	}

	classified := domain.ClassifyFiles(files, pack)

	var result GateResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Contract = domain.EvaluateContract(classified)
	}()
	go func() {
		defer wg.Done()
		result.Drift = domain.EvaluateDrift(classified)
	}()
	wg.Wait()

	return result, nil
}

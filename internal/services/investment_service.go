package services

import (
	"context"

	"financehub/internal/models"
	"financehub/internal/pagination"
)

// investmentService handles recurring contributions (SIPs) and insurance
// policies.
type investmentService struct {
	ledger *Ledger
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(ledger *Ledger) InvestmentServicer {
	return &investmentService{ledger: ledger}
}

// CreateContribution adds a recurring contribution.
func (s *investmentService) CreateContribution(ctx context.Context, sip models.Contribution) (*models.Contribution, error) {
	return contributions.add(ctx, s.ledger, sip)
}

// GetContributions returns a page of contributions.
func (s *investmentService) GetContributions(page pagination.PageRequest) (*pagination.PageResponse[models.Contribution], error) {
	result := pagination.Slice(contributions.list(s.ledger), page)
	return &result, nil
}

// DeleteContribution removes a contribution.
func (s *investmentService) DeleteContribution(ctx context.Context, id string) error {
	_, err := contributions.remove(ctx, s.ledger, id)
	return err
}

// CreatePolicy adds an insurance policy.
func (s *investmentService) CreatePolicy(ctx context.Context, policy models.InsurancePolicy) (*models.InsurancePolicy, error) {
	return insurancePolicies.add(ctx, s.ledger, policy)
}

// GetPolicies returns a page of insurance policies.
func (s *investmentService) GetPolicies(page pagination.PageRequest) (*pagination.PageResponse[models.InsurancePolicy], error) {
	result := pagination.Slice(insurancePolicies.list(s.ledger), page)
	return &result, nil
}

// DeletePolicy removes an insurance policy.
func (s *investmentService) DeletePolicy(ctx context.Context, id string) error {
	_, err := insurancePolicies.remove(ctx, s.ledger, id)
	return err
}

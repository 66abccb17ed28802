package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/careslot/booking-service/internal/domain"
	policyRepo "github.com/careslot/booking-service/internal/infra/storage/policy"
	providerClient "github.com/careslot/booking-service/internal/integrations/providerservice"
	"github.com/careslot/booking-service/internal/service/policy/models"
)

// Service manages per-provider booking policies
type Service struct {
	policyRepo     PolicyRepository
	providerClient ProviderServiceClient
	logger         Logger
}

// NewService creates the policy service
func NewService(
	policyRepo PolicyRepository,
	providerClient ProviderServiceClient,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:     policyRepo,
		providerClient: providerClient,
		logger:         logger,
	}
}

// Get fetches a provider's booking policy. Public: clients need it to
// interpret the availability calendar. Providers without a stored policy
// get the defaults, flagged as such.
func (s *Service) Get(ctx context.Context, providerID int64) (*models.PolicyResponse, error) {
	s.logger.Info("Get: fetching policy for provider=%d", providerID)

	if _, err := s.providerClient.GetProvider(ctx, providerID); err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			s.logger.Warn("Get: provider id=%d not found", providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Get: failed to get provider id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	stored, err := s.policyRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Info("Get: provider=%d has no stored policy, returning defaults", providerID)
			return models.FromDefaultPolicy(domain.DefaultBookingPolicy(providerID)), nil
		}
		s.logger.Error("Get: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(stored), nil
}

// Update replaces a provider's booking policy. Staff only.
func (s *Service) Update(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Update: updating policy for provider=%d by user=%d", req.ProviderID, req.UserID)

	policy := req.ToDomainPolicy()
	if err := policy.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	provider, err := s.providerClient.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			s.logger.Warn("Update: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Update: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	if !provider.IsStaff(req.UserID) {
		s.logger.Warn("Update: user=%d is not staff of provider=%d", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	updated, err := s.policyRepo.Upsert(ctx, policy)
	if err != nil {
		s.logger.Error("Update: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated policy for provider=%d", req.ProviderID)
	return models.FromDomainPolicy(updated), nil
}

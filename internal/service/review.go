package service

import (
	"context"
	"strings"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type reviewService struct {
	ratingRepo   repository.RatingRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewReviewService(ratingRepo repository.RatingRepository, propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) ReviewService {
	return &reviewService{
		ratingRepo:   ratingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// SubmitReview records or replaces the tenant's rating and refreshes the
// property average. Only tenants who have rented the property may review it.
func (s *reviewService) SubmitReview(ctx context.Context, tenantID, propertyID, score int32, comment string) (*domain.Rating, error) {
	if score < domain.MinRatingScore || score > domain.MaxRatingScore {
		return nil, domain.NewValidationError("score must be between %d and %d", domain.MinRatingScore, domain.MaxRatingScore)
	}
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	rented, err := s.userRepo.HasRented(ctx, tenantID, propertyID)
	if err != nil {
		return nil, err
	}
	if !rented {
		return nil, domain.NewAuthorizationError("you can only review properties you have rented")
	}

	rating := &domain.Rating{
		TenantID:   tenantID,
		PropertyID: propertyID,
		Score:      score,
		Comment:    strings.TrimSpace(comment),
	}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	avg, err := s.ratingRepo.AverageForProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := s.propertyRepo.SetAverageRating(ctx, propertyID, avg); err != nil {
		return nil, err
	}
	logger.Info("Review submitted", "propertyID", propertyID, "tenantID", tenantID, "average", avg)
	return rating, nil
}

func (s *reviewService) ToggleSavedProperty(ctx context.Context, tenantID, propertyID int32) (bool, error) {
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return false, err
	}
	return s.propertyRepo.ToggleSaved(ctx, tenantID, propertyID)
}

package ledger

import (
	"errors"

	apperrors "fincoach/internal/errors"
	"fincoach/internal/models"

	"gorm.io/gorm"
)

// ProfileStore reads user advisory profiles.
type ProfileStore struct {
	db *gorm.DB
}

// NewProfileStore creates a profile store over db.
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// RiskTolerance returns the user's declared risk tolerance.
func (s *ProfileStore) RiskTolerance(userID string) (models.RiskTolerance, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrRiskProfileNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return profile.RiskTolerance, nil
}

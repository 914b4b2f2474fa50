package models

// RiskTolerance is a user-declared risk-tolerance category. It drives which
// tickers the opportunity selector suggests.
type RiskTolerance string

const (
	RiskNone     RiskTolerance = "no_risk"
	RiskLow      RiskTolerance = "low"
	RiskMedium   RiskTolerance = "medium"
	RiskHigh     RiskTolerance = "high"
	RiskVeryHigh RiskTolerance = "very_high"
)

// UserProfile holds per-user advisory settings.
type UserProfile struct {
	Base
	UserID        string        `gorm:"not null;uniqueIndex" json:"user_id"`
	RiskTolerance RiskTolerance `gorm:"not null;default:'medium'" json:"risk_tolerance"`
}

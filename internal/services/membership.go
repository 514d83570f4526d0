package services

import (
	"math"

	"menulink/internal/models/db_models"
	"menulink/internal/models/response_models"
	"menulink/pkg/utils"
)

// MembershipStatus is the pure classification of a restaurant's membership
// at a given instant. All timestamps are epoch milliseconds.
type MembershipStatus struct {
	Type           db_models.MembershipType
	ExpiryDate     *int64
	IsLifetime     bool
	IsExpired      bool
	IsExpiringSoon bool
	DaysLeft       *int
}

// ClassifyMembership applies the display rules:
//   - lifetime ignores the stored expiry entirely;
//   - for everything else an absent expiry counts as both expired and
//     expiring soon (the dashboard badge rule);
//   - expiring soon means less than 7 days remain.
func ClassifyMembership(membershipType db_models.MembershipType, expiryDate *int64, now int64) MembershipStatus {
	status := MembershipStatus{
		Type:       membershipType,
		ExpiryDate: expiryDate,
		IsLifetime: membershipType == db_models.MembershipLifetime,
	}

	if expiryDate != nil {
		days := int(math.Ceil(float64(*expiryDate-now) / float64(utils.MillisPerDay)))
		status.DaysLeft = &days
	}

	if status.IsLifetime {
		return status
	}

	status.IsExpired = expiryDate == nil || *expiryDate < now
	status.IsExpiringSoon = expiryDate == nil || *expiryDate-now < utils.ExpiringSoonWindowMillis

	return status
}

// BlocksPublicAccess is the public-page gate. It is deliberately stricter
// than IsExpired in the opposite direction: an absent expiry does NOT block
// the public menu, it only marks the dashboard badge as expired.
func BlocksPublicAccess(membershipType db_models.MembershipType, expiryDate *int64, now int64) bool {
	if membershipType == db_models.MembershipLifetime {
		return false
	}
	return expiryDate != nil && *expiryDate < now
}

// ShouldShowPricing decides whether the upgrade pricing section is offered.
func ShouldShowPricing(status MembershipStatus) bool {
	if status.Type == "" {
		return true
	}
	if status.IsLifetime {
		return false
	}
	if status.Type == db_models.MembershipTrial || status.Type == db_models.MembershipBasic {
		return status.IsExpiringSoon || status.IsExpired ||
			(status.DaysLeft != nil && *status.DaysLeft <= 2)
	}
	return false
}

func (s MembershipStatus) ToResponse() response_models.MembershipStatusResponse {
	return response_models.MembershipStatusResponse{
		MembershipType: string(s.Type),
		ExpiryDate:     s.ExpiryDate,
		IsLifetime:     s.IsLifetime,
		IsExpired:      s.IsExpired,
		IsExpiringSoon: s.IsExpiringSoon,
		DaysLeft:       s.DaysLeft,
		ShowPricing:    ShouldShowPricing(s),
	}
}

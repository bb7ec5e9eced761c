package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberclub/booking-api/internal/models"
)

func weekdayPolicy() PremiumPolicy {
	return PremiumPolicy{
		AllowedWeekdays:   []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday},
		VisitIntervalDays: 7,
	}
}

func TestSubscriptionFromModel(t *testing.T) {
	// sem linha de assinatura → Start sem gate
	state := SubscriptionFromModel(nil)
	assert.Equal(t, TierStart, state.Tier)
	assert.Equal(t, SubInactive, state.Status)
	assert.False(t, state.IsActivePremium())

	state = SubscriptionFromModel(&models.Subscription{Tier: "premium", Status: "active"})
	assert.True(t, state.IsActivePremium())

	state = SubscriptionFromModel(&models.Subscription{Tier: "premium", Status: "past_due"})
	assert.False(t, state.IsActivePremium())
}

func TestCanBookOnDate(t *testing.T) {
	p := weekdayPolicy()
	premium := SubscriptionState{Tier: TierPremium, Status: SubActive}
	start := SubscriptionState{Tier: TierStart, Status: SubActive}

	monday := time.Date(2026, time.September, 7, 9, 0, 0, 0, testLoc)
	saturday := time.Date(2026, time.September, 5, 9, 0, 0, 0, testLoc)

	assert.True(t, p.CanBookOnDate(premium, monday))
	assert.False(t, p.CanBookOnDate(premium, saturday))

	// Start não tem restrição de dia
	assert.True(t, p.CanBookOnDate(start, saturday))
}

func TestIsBookingFastTracked(t *testing.T) {
	p := weekdayPolicy()

	assert.True(t, p.IsBookingFastTracked(SubscriptionState{Tier: TierPremium, Status: SubActive}))
	assert.False(t, p.IsBookingFastTracked(SubscriptionState{Tier: TierPremium, Status: SubPastDue}))
	assert.False(t, p.IsBookingFastTracked(SubscriptionState{Tier: TierStart, Status: SubActive}))
}

func TestVisitWindow(t *testing.T) {
	p := weekdayPolicy()

	center := time.Date(2026, time.September, 7, 9, 0, 0, 0, testLoc)
	from, to := p.VisitWindow(center)

	assert.Equal(t, center.AddDate(0, 0, -7), from)
	assert.Equal(t, center.AddDate(0, 0, 7), to)
}

package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/models"
)

func TestStatusOccupies(t *testing.T) {
	assert.True(t, StatusPending.Occupies())
	assert.True(t, StatusConfirmed.Occupies())
	assert.True(t, StatusCompleted.Occupies())
	assert.False(t, StatusCancelled.Occupies())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestTransitions(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))
	assert.Error(t, CanConfirm(StatusConfirmed))
	assert.Error(t, CanConfirm(StatusCompleted))
	assert.Error(t, CanConfirm(StatusCancelled))

	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.Error(t, CanCancel(StatusCompleted))
	assert.Error(t, CanCancel(StatusCancelled))

	assert.Error(t, CanComplete(StatusPending))
	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.Error(t, CanComplete(StatusCompleted))
	assert.Error(t, CanComplete(StatusCancelled))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, InitialStatus(true))
	assert.Equal(t, StatusPending, InitialStatus(false))
}

func TestDomainActions(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusPending)}
	assert.NoError(t, Confirm(b, now))
	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.NotNil(t, b.ConfirmedAt)

	assert.NoError(t, Complete(b, now))
	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.NotNil(t, b.CompletedAt)

	// concluído não volta atrás
	err := Cancel(b, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	b = &models.Booking{Status: string(StatusConfirmed)}
	assert.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	assert.NotNil(t, b.CancelledAt)
}

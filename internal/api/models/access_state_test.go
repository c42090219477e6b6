package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessState_Derivation(t *testing.T) {
	var app Application
	assert.Equal(t, AccessHidden, app.AccessState())

	app.DetailsAccessRequested = true
	assert.Equal(t, AccessRequested, app.AccessState())

	app.DetailsAccessGranted = true
	assert.Equal(t, AccessGranted, app.AccessState())
}

func TestRequestAccess(t *testing.T) {
	now := time.Now()
	var app Application

	require.NoError(t, app.RequestAccess(now))
	assert.Equal(t, AccessRequested, app.AccessState())
	require.NotNil(t, app.DetailsAccessRequestedAt)
	assert.Equal(t, now, *app.DetailsAccessRequestedAt)

	err := app.RequestAccess(now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrAccessAlreadyRequested)

	require.NoError(t, app.GrantAccess(1, now))
	err = app.RequestAccess(now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrAccessAlreadyGranted)
}

func TestGrantAccess(t *testing.T) {
	now := time.Now()
	adminID := uint(42)

	t.Run("requires a pending request", func(t *testing.T) {
		var app Application
		err := app.GrantAccess(adminID, now)
		assert.ErrorIs(t, err, ErrAccessNotRequested)
		assert.Equal(t, AccessHidden, app.AccessState())
	})

	t.Run("grants a requested application", func(t *testing.T) {
		var app Application
		require.NoError(t, app.RequestAccess(now))
		require.NoError(t, app.GrantAccess(adminID, now))

		assert.Equal(t, AccessGranted, app.AccessState())
		require.NotNil(t, app.DetailsAccessGrantedBy)
		assert.Equal(t, adminID, *app.DetailsAccessGrantedBy)
		require.NotNil(t, app.DetailsAccessGrantedAt)
	})

	t.Run("granting twice is a conflict", func(t *testing.T) {
		var app Application
		require.NoError(t, app.RequestAccess(now))
		require.NoError(t, app.GrantAccess(adminID, now))

		err := app.GrantAccess(adminID, now)
		assert.ErrorIs(t, err, ErrAccessAlreadyGranted)
	})
}

func TestApplicationStatus_IsFinal(t *testing.T) {
	assert.True(t, StatusHired.IsFinal())
	assert.True(t, StatusRejected.IsFinal())
	assert.True(t, StatusWithdrawn.IsFinal())

	assert.False(t, StatusPending.IsFinal())
	assert.False(t, StatusReviewing.IsFinal())
	assert.False(t, StatusShortlisted.IsFinal())
	assert.False(t, StatusInterviewScheduled.IsFinal())
}

func TestSetStatus_AppendsHistory(t *testing.T) {
	now := time.Now()
	app := Application{Status: StatusPending}

	app.SetStatus(StatusReviewing, "Started review", now)
	app.SetStatus(StatusShortlisted, "", now.Add(time.Hour))

	assert.Equal(t, StatusShortlisted, app.Status)
	require.Len(t, app.History, 2)
	assert.Equal(t, StatusReviewing, app.History[0].Status)
	assert.Equal(t, "Started review", app.History[0].Note)
	assert.Equal(t, StatusShortlisted, app.History[1].Status)
}

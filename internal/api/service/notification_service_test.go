package service

import (
	"testing"

	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findNotification(items []response.Notification, refID uint, kind string) *response.Notification {
	for i := range items {
		if items[i].RefID == refID && items[i].Type == kind {
			return &items[i]
		}
	}
	return nil
}

func TestNotifications_EmployerFeed(t *testing.T) {
	db := setupServiceTestDB(t)
	appSvc := NewApplicationService(db, nil)
	notifSvc := NewNotificationService(db)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	created, err := appSvc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, created.ID)

	feed, err := notifSvc.ForUser(employer.ID, models.RoleEmployer)
	require.NoError(t, err)
	item := findNotification(feed, created.ID, "application_received")
	require.NotNil(t, item)
	assert.Equal(t, job.ID, item.JobID)
}

func TestNotifications_AdminSeesPendingAccessRequests(t *testing.T) {
	db := setupServiceTestDB(t)
	appSvc := NewApplicationService(db, nil)
	notifSvc := NewNotificationService(db)

	employer := createTestUser(t, db, models.RoleEmployer)
	admin := createTestUser(t, db, models.RoleAdmin)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	created, err := appSvc.Apply(job.ID, seeker.ID, request.ApplyDTO{}, "")
	require.NoError(t, err)
	defer cleanupApplication(db, created.ID)

	// Nothing pending yet.
	feed, err := notifSvc.ForUser(admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Nil(t, findNotification(feed, created.ID, "access_request"))

	_, err = appSvc.RequestAccess(created.ID, employer.ID)
	require.NoError(t, err)

	feed, err = notifSvc.ForUser(admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	item := findNotification(feed, created.ID, "access_request")
	require.NotNil(t, item)
	assert.Equal(t, job.ID, item.JobID)
	assert.NotEmpty(t, item.Message)

	// Granted requests leave the queue.
	_, err = appSvc.GrantAccess(created.ID, admin.ID)
	require.NoError(t, err)

	feed, err = notifSvc.ForUser(admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Nil(t, findNotification(feed, created.ID, "access_request"))
}

package service

import (
	"fmt"
	"sort"
	"time"

	"jobboard"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
	"jobboard/internal/api/repo"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const notificationWindow = 14 * 24 * time.Hour

// NotificationService derives a notification feed from recent activity.
// Nothing is stored per notification; the feed is recomputed from the
// application tables on each poll. Live pushes go over the websocket
// stream instead.
type NotificationService struct {
	appRepo *repo.ApplicationRepository
	logger  zerolog.Logger
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{
		appRepo: repo.NewApplicationRepository(db),
		logger:  jobboard.Logger,
	}
}

// ForUser builds the feed for either role, newest first.
func (slf *NotificationService) ForUser(userID uint, role models.AppRole) ([]response.Notification, error) {
	since := time.Now().Add(-notificationWindow)

	var out []response.Notification
	switch role {
	case models.RoleEmployer:
		apps, err := slf.appRepo.FindRecentByEmployer(userID, since)
		if err != nil {
			return nil, err
		}
		for _, app := range apps {
			out = append(out, response.Notification{
				Type:      "application_received",
				Title:     "New application",
				Message:   fmt.Sprintf("A candidate applied for %s", app.Job.Title),
				JobID:     app.JobID,
				RefID:     app.ID,
				Timestamp: app.CreatedAt,
			})
			if app.AccessState() == models.AccessGranted && app.DetailsAccessGrantedAt != nil {
				out = append(out, response.Notification{
					Type:      "access_granted",
					Title:     "Applicant details unlocked",
					Message:   fmt.Sprintf("You can now view the applicant's details for %s", app.Job.Title),
					JobID:     app.JobID,
					RefID:     app.ID,
					Timestamp: *app.DetailsAccessGrantedAt,
				})
			}
		}
	case models.RoleJobSeeker:
		apps, err := slf.appRepo.FindRecentStatusChangesByApplicant(userID, since)
		if err != nil {
			return nil, err
		}
		for _, app := range apps {
			out = append(out, response.Notification{
				Type:      "status_update",
				Title:     "Application update",
				Message:   fmt.Sprintf("Your application for %s is now %s", app.Job.Title, app.Status),
				JobID:     app.JobID,
				RefID:     app.ID,
				Timestamp: app.UpdatedAt,
			})
		}
	case models.RoleAdmin:
		apps, err := slf.appRepo.FindPendingAccessRequests()
		if err != nil {
			return nil, err
		}
		for _, app := range apps {
			ts := app.CreatedAt
			if app.DetailsAccessRequestedAt != nil {
				ts = *app.DetailsAccessRequestedAt
			}
			who := app.Employer.CompanyName
			if who == "" {
				who = "An employer"
			}
			out = append(out, response.Notification{
				Type:      "access_request",
				Title:     "Access request pending",
				Message:   fmt.Sprintf("%s wants applicant details for %s", who, app.Job.Title),
				JobID:     app.JobID,
				RefID:     app.ID,
				Timestamp: ts,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

package repo

import (
	"jobboard/internal/api/models"
	"time"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	Db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{Db: db}
}

func (slf *ApplicationRepository) FindByID(id uint) (models.Application, error) {
	var app models.Application
	err := slf.Db.Preload("Job").Preload("Applicant").First(&app, id).Error
	return app, err
}

func (slf *ApplicationRepository) FindByJobAndApplicant(jobID, applicantID uint) (models.Application, error) {
	var app models.Application
	err := slf.Db.
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&app).Error
	return app, err
}

func (slf *ApplicationRepository) Create(app *models.Application) error {
	return slf.Db.Create(app).Error
}

func (slf *ApplicationRepository) Update(app *models.Application) error {
	return slf.Db.Save(app).Error
}

func (slf *ApplicationRepository) FindByApplicant(applicantID uint) ([]models.Application, error) {
	var apps []models.Application
	err := slf.Db.
		Preload("Job").Preload("Applicant").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (slf *ApplicationRepository) FindByEmployer(employerID uint) ([]models.Application, error) {
	var apps []models.Application
	err := slf.Db.
		Preload("Job").Preload("Applicant").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (slf *ApplicationRepository) FindByJob(jobID uint) ([]models.Application, error) {
	var apps []models.Application
	err := slf.Db.
		Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindPendingAccessRequests lists applications waiting on an admin grant,
// newest request first.
func (slf *ApplicationRepository) FindPendingAccessRequests() ([]models.Application, error) {
	var apps []models.Application
	err := slf.Db.
		Preload("Job").
		Preload("Employer").
		Preload("Applicant").
		Where("details_access_requested = true AND details_access_granted = false").
		Order("details_access_requested_at DESC").
		Find(&apps).Error
	return apps, err
}

func (slf *ApplicationRepository) GetAll(page, pageSize int) ([]models.Application, int64, error) {
	var apps []models.Application
	var total int64

	if err := slf.Db.Model(&models.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := slf.Db.
		Preload("Job").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error
	return apps, total, err
}

func (slf *ApplicationRepository) CountByEmployerAndStatus(employerID uint, status models.ApplicationStatus) (int64, error) {
	var count int64
	q := slf.Db.Model(&models.Application{}).Where("employer_id = ?", employerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}

func (slf *ApplicationRepository) CountByApplicantAndStatus(applicantID uint, status models.ApplicationStatus) (int64, error) {
	var count int64
	q := slf.Db.Model(&models.Application{}).Where("applicant_id = ?", applicantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}

func (slf *ApplicationRepository) Count() (int64, error) {
	var count int64
	err := slf.Db.Model(&models.Application{}).Count(&count).Error
	return count, err
}

func (slf *ApplicationRepository) FindRecentByEmployer(employerID uint, since time.Time) ([]models.Application, error) {
	var apps []models.Application
	err := slf.Db.
		Preload("Job").
		Where("employer_id = ? AND created_at > ?", employerID, since).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (slf *ApplicationRepository) FindRecentStatusChangesByApplicant(applicantID uint, since time.Time) ([]models.Application, error) {
	var apps []models.Application
	err := slf.Db.
		Preload("Job").
		Where("applicant_id = ? AND updated_at > ? AND status <> ?", applicantID, since, models.StatusPending).
		Order("updated_at DESC").
		Find(&apps).Error
	return apps, err
}

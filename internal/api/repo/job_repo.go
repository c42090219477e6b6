package repo

import (
	"encoding/json"
	"fmt"

	"jobboard/internal/api/models"

	"gorm.io/gorm"
)

type JobRepository struct {
	Db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{Db: db}
}

// JobFilter carries the optional query-string filters of GET /jobs.
type JobFilter struct {
	Category  string
	JobType   string
	WorkMode  string
	City      string
	Query     string
	Skills    []string
	Languages []string
	SalaryMin int
	Status    models.JobStatus
	CompanyID uint
	Page      int
	PageSize  int
}

func (slf *JobRepository) FindByID(id uint) (models.Job, error) {
	var job models.Job
	err := slf.Db.First(&job, id).Error
	return job, err
}

func (slf *JobRepository) Create(job *models.Job) error {
	return slf.Db.Create(job).Error
}

func (slf *JobRepository) Update(job *models.Job) error {
	return slf.Db.Save(job).Error
}

func (slf *JobRepository) Patch(id uint, fields map[string]any) error {
	return slf.Db.Model(&models.Job{}).Where("id = ?", id).Updates(fields).Error
}

func (slf *JobRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Job{}, id).Error
}

func (slf *JobRepository) Search(f JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	q := slf.Db.Model(&models.Job{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.JobType != "" {
		q = q.Where("job_type = ?", f.JobType)
	}
	if f.WorkMode != "" {
		q = q.Where("work_mode = ?", f.WorkMode)
	}
	if f.CompanyID != 0 {
		q = q.Where("company_id = ?", f.CompanyID)
	}
	if f.City != "" {
		q = q.Where("location->>'city' ILIKE ?", "%"+f.City+"%")
	}
	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ? OR company_name ILIKE ?", pattern, pattern, pattern)
	}
	if f.SalaryMin > 0 {
		q = q.Where("(salary->>'max')::int >= ?", f.SalaryMin)
	}
	if len(f.Skills) > 0 {
		q = q.Where(jsonbAnyOf(slf.Db, "skills", f.Skills))
	}
	if len(f.Languages) > 0 {
		q = q.Where(jsonbAnyOf(slf.Db, "languages_req", f.Languages))
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	err := q.
		Order("is_featured DESC, created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error
	return jobs, total, err
}

func (slf *JobRepository) FindByCompany(companyID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := slf.Db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (slf *JobRepository) FindByIDs(ids []uint) ([]models.Job, error) {
	var jobs []models.Job
	if len(ids) == 0 {
		return jobs, nil
	}
	err := slf.Db.Where("id IN ?", ids).Find(&jobs).Error
	return jobs, err
}

func (slf *JobRepository) IncrementViews(id uint) error {
	return slf.Db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (slf *JobRepository) IncrementApplicationCount(id uint) error {
	return slf.Db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
}

func (slf *JobRepository) CountByStatus(status models.JobStatus) (int64, error) {
	var count int64
	q := slf.Db.Model(&models.Job{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}

func (slf *JobRepository) CountByCompany(companyID uint) (int64, error) {
	var count int64
	err := slf.Db.Model(&models.Job{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (slf *JobRepository) CountActiveByCompany(companyID uint) (int64, error) {
	var count int64
	err := slf.Db.Model(&models.Job{}).
		Where("company_id = ? AND status = ?", companyID, models.JobActive).
		Count(&count).Error
	return count, err
}

// jsonbAnyOf matches rows whose jsonb string array column contains at
// least one of the given values.
func jsonbAnyOf(db *gorm.DB, column string, values []string) *gorm.DB {
	expr := fmt.Sprintf("%s @> ?::jsonb", column)
	cond := db.Where(expr, jsonOne(values[0]))
	for _, v := range values[1:] {
		cond = cond.Or(expr, jsonOne(v))
	}
	return cond
}

func jsonOne(value string) string {
	b, _ := json.Marshal([]string{value})
	return string(b)
}

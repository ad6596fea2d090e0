package repo

import (
	"errors"

	"gorm.io/gorm"

	"jobtrack-api/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) Create(j *domain.Job) error { return r.db.Create(j).Error }

func (r *JobRepo) ListByOwner(ownerID string) ([]domain.Job, error) {
	jobs := make([]domain.Job, 0)
	err := r.db.Where("created_by = ?", ownerID).
		Order("created_at asc").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) FindOne(jobID, ownerID string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.First(&j, "id = ? AND created_by = ?", jobID, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepo) UpdateOne(jobID, ownerID string, p domain.JobPatch) (*domain.Job, error) {
	j, err := r.FindOne(jobID, ownerID)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if p.Company != nil {
		updates["company"] = *p.Company
	}
	if p.Position != nil {
		updates["position"] = *p.Position
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if len(updates) == 0 {
		return j, nil
	}
	// 复合条件再限定一次，抵抗读写之间的并发删除
	res := r.db.Model(&domain.Job{}).
		Where("id = ? AND created_by = ?", jobID, ownerID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindOne(jobID, ownerID)
}

func (r *JobRepo) DeleteOne(jobID, ownerID string) (*domain.Job, error) {
	j, err := r.FindOne(jobID, ownerID)
	if err != nil {
		return nil, err
	}
	res := r.db.Where("id = ? AND created_by = ?", jobID, ownerID).
		Delete(&domain.Job{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return j, nil
}

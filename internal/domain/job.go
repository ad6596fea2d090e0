package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Job 状态流转不做限制，只要求枚举合法
const (
	StatusPending   = "pending"
	StatusInterview = "interview"
	StatusDecline   = "decline"
)

type Job struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Company   string    `gorm:"size:64;not null" json:"company"`
	Position  string    `gorm:"size:128;not null" json:"position"`
	Status    string    `gorm:"size:16;not null;default:pending" json:"status"`
	CreatedBy string    `gorm:"size:36;index;not null" json:"createdBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Job) TableName() string { return "jobs" }

// JobPatch 部分更新：nil 表示该字段未提交
type JobPatch struct {
	Company  *string
	Position *string
	Status   *string
}

// JobRepository 所有读写都按 (id, ownerId) 复合匹配，
// 别人的记录与不存在的记录同样返回 ErrNotFound
type JobRepository interface {
	Create(j *Job) error
	ListByOwner(ownerID string) ([]Job, error)
	FindOne(jobID, ownerID string) (*Job, error)
	UpdateOne(jobID, ownerID string, p JobPatch) (*Job, error)
	DeleteOne(jobID, ownerID string) (*Job, error)
}

func validStatus(s string) bool {
	switch s {
	case StatusPending, StatusInterview, StatusDecline:
		return true
	}
	return false
}

// ValidateNewJob 规范化并校验新记录；status 为空回落 pending
func ValidateNewJob(j *Job) error {
	j.Company = strings.TrimSpace(j.Company)
	j.Position = strings.TrimSpace(j.Position)
	if j.Status == "" {
		j.Status = StatusPending
	}
	switch {
	case j.Company == "":
		return Invalid("company", "please provide company name")
	case utf8.RuneCountInString(j.Company) > 50:
		return Invalid("company", "company must be at most 50 characters")
	case j.Position == "":
		return Invalid("position", "please provide position")
	case utf8.RuneCountInString(j.Position) > 100:
		return Invalid("position", "position must be at most 100 characters")
	case !validStatus(j.Status):
		return Invalid("status", "status must be one of pending, interview, decline")
	}
	return nil
}

// ValidatePatch 规范化并校验部分更新。必填字段不允许被清空：
// schema 的 required 在 update 路径不生效，这里显式兜底
func ValidatePatch(p JobPatch) error {
	if p.Company != nil {
		*p.Company = strings.TrimSpace(*p.Company)
		switch {
		case *p.Company == "":
			return Invalid("company", "company field cannot be empty")
		case utf8.RuneCountInString(*p.Company) > 50:
			return Invalid("company", "company must be at most 50 characters")
		}
	}
	if p.Position != nil {
		*p.Position = strings.TrimSpace(*p.Position)
		switch {
		case *p.Position == "":
			return Invalid("position", "position field cannot be empty")
		case utf8.RuneCountInString(*p.Position) > 100:
			return Invalid("position", "position must be at most 100 characters")
		}
	}
	if p.Status != nil && !validStatus(*p.Status) {
		return Invalid("status", "status must be one of pending, interview, decline")
	}
	return nil
}

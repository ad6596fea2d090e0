package router

import (
	"sync"
	"time"

	"jobtrack-api/internal/domain"
)

// 内存版仓库，语义对齐 internal/repo 的 gorm 实现

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// 与 gorm 唯一索引一致：精确匹配，大小写敏感
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return &domain.DuplicateError{Field: "email"}
		}
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeJobRepo struct {
	mu    sync.Mutex
	jobs  map[string]domain.Job
	order []string // 插入序即 createdAt 升序
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]domain.Job{}}
}

func (r *fakeJobRepo) Create(j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	r.jobs[j.ID] = *j
	r.order = append(r.order, j.ID)
	return nil
}

func (r *fakeJobRepo) ListByOwner(ownerID string) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Job, 0)
	for _, id := range r.order {
		if j, ok := r.jobs[id]; ok && j.CreatedBy == ownerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindOne(jobID, ownerID string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(jobID, ownerID)
}

func (r *fakeJobRepo) findLocked(jobID, ownerID string) (*domain.Job, error) {
	j, ok := r.jobs[jobID]
	if !ok || j.CreatedBy != ownerID {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}

func (r *fakeJobRepo) UpdateOne(jobID, ownerID string, p domain.JobPatch) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, err := r.findLocked(jobID, ownerID)
	if err != nil {
		return nil, err
	}
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.Position != nil {
		j.Position = *p.Position
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	j.UpdatedAt = time.Now()
	r.jobs[jobID] = *j
	return j, nil
}

func (r *fakeJobRepo) DeleteOne(jobID, ownerID string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, err := r.findLocked(jobID, ownerID)
	if err != nil {
		return nil, err
	}
	delete(r.jobs, jobID)
	return j, nil
}

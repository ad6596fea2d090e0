package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-api/internal/domain"
	mdw "jobtrack-api/internal/transport/http/middleware"
	resp "jobtrack-api/internal/transport/http/response"
	"jobtrack-api/pkg/utils"
)

// jobsModule 全部挂在鉴权分组下；ownerId 只取自验证过的
// token 身份，请求体里带什么都不认
type jobsModule struct {
	jobs domain.JobRepository
}

func NewJobsModule(jobs domain.JobRepository) Module {
	return &jobsModule{jobs: jobs}
}

func (m *jobsModule) Priority() int { return 20 }

func (m *jobsModule) Mount(_, protected *gin.RouterGroup) {
	protected.GET("/jobs", m.list)
	protected.POST("/jobs", m.create)
	protected.GET("/jobs/:id", m.get)
	protected.PATCH("/jobs/:id", m.update)
	protected.DELETE("/jobs/:id", m.remove)
}

type jobIn struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Status   string `json:"status"`
}

type jobPatchIn struct {
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Status   *string `json:"status"`
}

func (m *jobsModule) list(c *gin.Context) {
	jobs, err := m.jobs.ListByOwner(c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (m *jobsModule) create(c *gin.Context) {
	var in jobIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}
	j := &domain.Job{
		ID:        utils.NewID(),
		Company:   in.Company,
		Position:  in.Position,
		Status:    in.Status,
		CreatedBy: c.GetString(mdw.KeyUserID),
	}
	if err := domain.ValidateNewJob(j); err != nil {
		resp.WriteError(c, err)
		return
	}
	if err := m.jobs.Create(j); err != nil {
		resp.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": j})
}

func (m *jobsModule) get(c *gin.Context) {
	j, err := m.jobs.FindOne(c.Param("id"), c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

func (m *jobsModule) update(c *gin.Context) {
	var in jobPatchIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}
	patch := domain.JobPatch{Company: in.Company, Position: in.Position, Status: in.Status}
	if err := domain.ValidatePatch(patch); err != nil {
		resp.WriteError(c, err)
		return
	}
	j, err := m.jobs.UpdateOne(c.Param("id"), c.GetString(mdw.KeyUserID), patch)
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

func (m *jobsModule) remove(c *gin.Context) {
	j, err := m.jobs.DeleteOne(c.Param("id"), c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

package router

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobtrack-api/internal/core/auth"
	"jobtrack-api/internal/core/cache"
	"jobtrack-api/internal/domain"
	mdw "jobtrack-api/internal/transport/http/middleware"
	resp "jobtrack-api/internal/transport/http/response"
	"jobtrack-api/pkg/utils"
)

const profileCacheTTL = 10 * time.Minute

type authModule struct {
	users domain.UserRepository
	jwter *auth.JWTer
	cache *cache.Cache // 可为 nil（无 redis 部署 / 测试）
}

func NewAuthModule(users domain.UserRepository, jwter *auth.JWTer, c *cache.Cache) Module {
	return &authModule{users: users, jwter: jwter, cache: c}
}

func (m *authModule) Priority() int { return 10 }

func (m *authModule) Mount(public, protected *gin.RouterGroup) {
	public.POST("/auth/register", m.register)
	public.POST("/auth/login", m.login)
	protected.GET("/me", m.me)
}

type credentialsIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userOut struct {
	Name string `json:"name"`
}

// register 注册成功直接发 token，省一次 login 往返
func (m *authModule) register(c *gin.Context) {
	var in credentialsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := domain.ValidateNewUser(in.Name, in.Email, in.Password); err != nil {
		resp.WriteError(c, err)
		return
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := m.users.Create(u); err != nil {
		resp.WriteError(c, err)
		return
	}
	tok, err := m.jwter.Issue(u.ID, u.Name)
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": userOut{Name: u.Name}, "token": tok})
}

func (m *authModule) login(c *gin.Context) {
	var in credentialsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, "invalid request body")
		return
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		resp.Err(c, http.StatusBadRequest, "please provide email and password")
		return
	}
	// 查无此人和密码不对给同一个 401
	u, err := m.users.FindByEmail(in.Email)
	if errors.Is(err, domain.ErrNotFound) {
		resp.Err(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	if !utils.CheckPassword(in.Password, u.PasswordHash) {
		resp.Err(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	tok, err := m.jwter.Issue(u.ID, u.Name)
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userOut{Name: u.Name}, "token": tok})
}

// me 用户创建后不可变，缓存不用失效
func (m *authModule) me(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	u, err := cache.GetOrLoadJSON[domain.User](m.cache, c.Request.Context(), "user:"+uid, profileCacheTTL,
		func(_ context.Context) (*domain.User, error) {
			return m.users.FindByID(uid)
		})
	if err != nil {
		resp.WriteError(c, err)
		return
	}
	// 缓存里可能躺着 "null"（回源方实现变化时），按查无处理
	if u == nil {
		resp.WriteError(c, domain.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}})
}

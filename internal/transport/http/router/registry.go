package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// Module 路由模块：public 无鉴权，protected 已挂 AuthJWT
type Module interface {
	Mount(public, protected *gin.RouterGroup)
}

// 可选：实现 Priority 控制挂载顺序（数值越小越先挂），默认 100
type prioritizer interface{ Priority() int }

type Registry struct{ mods []Module }

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Add(m Module) { r.mods = append(r.mods, m) }

func (r *Registry) Mount(public, protected *gin.RouterGroup) {
	mods := append([]Module(nil), r.mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.Mount(public, protected)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}

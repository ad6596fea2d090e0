package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-api/internal/domain"
)

// 认证失败一律返回同一句话，不暴露具体原因
const MsgAuthInvalid = "authentication invalid"

type errBody struct {
	Msg string `json:"msg"`
}

func Err(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, errBody{Msg: msg})
}

// WriteError 领域错误到 HTTP 的唯一转换点
func WriteError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		Err(c, http.StatusBadRequest, ve.Msg)
		return
	}
	var de *domain.DuplicateError
	if errors.As(err, &de) {
		Err(c, http.StatusBadRequest, "duplicate value entered for "+de.Field+" field, please choose another value")
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		Err(c, http.StatusNotFound, "not found")
		return
	}
	// 兜底 500，细节只进日志
	_ = c.Error(err)
	Err(c, http.StatusInternalServerError, "something went wrong, try again later")
}

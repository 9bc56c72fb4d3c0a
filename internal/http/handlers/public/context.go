package public

import (
	"strconv"

	"github.com/minicart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径中的数字 ID，非法或为 0 时按资源不存在处理。
func pathID(c *gin.Context, name string, notFoundMsg string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, notFoundMsg)
		return 0, false
	}
	return uint(id), true
}

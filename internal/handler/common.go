package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CallerHeader 呼叫者身分由外部的身分驗證層放進此 header；
// 這裡只取用，不做驗證
const CallerHeader = "X-Caller-Id"

const callerContextKey = "caller_id"

// CallerIdentity 將呼叫者身分寫進 gin context
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(callerContextKey, c.GetHeader(CallerHeader))
		c.Next()
	}
}

func callerFrom(c *gin.Context) string {
	return c.GetString(callerContextKey)
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

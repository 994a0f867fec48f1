package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the success envelope, merging extra fields into {ok:true}.
func OK(c *gin.Context, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	obj["ok"] = true
	c.JSON(http.StatusOK, obj)
}

// Fail writes the failure envelope {ok:false, error}.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"ok": false, "error": message})
}

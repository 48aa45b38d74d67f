package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryPage reads the 1-based page query argument. Anything that is not an
// integer means the first page.
func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

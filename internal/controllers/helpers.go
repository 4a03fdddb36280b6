package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID reads a positive integer path parameter.
// Anything else cannot match a stored row, so callers answer it like a missing one.
func paramID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

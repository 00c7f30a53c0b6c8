package common

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination reads the skip/limit query params shared by the
// listing endpoints. Limit is capped so a stray client cannot dump the
// whole table in one request.
func ParsePagination(c *gin.Context) (skip, limit int, err error) {
	skip, err = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, errors.New("skip must be a non-negative integer")
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		return 0, 0, errors.New("limit must be a non-negative integer")
	}
	if limit == 0 || limit > 500 {
		limit = 100
	}
	return skip, limit, nil
}

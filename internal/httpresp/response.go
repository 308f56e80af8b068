package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// OK writes the payload as-is with a 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List wraps a slice in the data/total envelope the staff pages expect.
func List[T any](c *gin.Context, data []T) {
	OK(c, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// DataResponse embrulha um recurso em {"data": ...}. Com ponteiro nulo o
// corpo vira {"data": null} — o contrato público de checkout usa isso para
// "não encontrado" sem erro.
type DataResponse struct {
	Data any `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Data(c *gin.Context, data any) {
	c.JSON(200, DataResponse{Data: data})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

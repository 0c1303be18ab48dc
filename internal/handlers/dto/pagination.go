package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/poemario-backend/internal/domain/repositories"
)

// ParsePagination extrai os parâmetros de paginação e ordenação da query
// string. Valores ausentes ou inválidos caem nos padrões; campos de ordenação
// fora da allow-list são resolvidos pelos services.
func ParsePagination(c *gin.Context) repositories.Pagination {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit < 1 {
		limit = repositories.DefaultLimit
	}
	if limit > repositories.MaxLimit {
		limit = repositories.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return repositories.Pagination{
		Limit:     limit,
		Offset:    offset,
		SortField: c.Query("sort"),
		Direction: repositories.SortDirection(c.Query("direction")),
	}
}

// PagedResponse envelopa uma listagem paginada
type PagedResponse struct {
	Items  interface{} `json:"items"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// NewPagedResponse cria o envelope de listagem com os valores efetivos
func NewPagedResponse(items interface{}, total int64, page repositories.Pagination) PagedResponse {
	return PagedResponse{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

package handlers

import (
	"sort"
	"strconv"

	"github.com/asmaaEbeed/trivia/internal/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope every failure path emits.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Resource not found"`
}

// Status texts are fixed per code. 405 really does say "not found", the
// browser client already depends on that label.
var errorMessages = map[int]string{
	400: "bad request",
	404: "Resource not found",
	405: "not found",
	422: "unprocessable",
	500: "internal server error",
}

func respondError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	})
}

func NoRoute(c *gin.Context) {
	respondError(c, 404)
}

func NoMethod(c *gin.Context) {
	respondError(c, 405)
}

// pageParam reads the page query parameter, defaulting to 1 when absent or
// unparseable. Zero and negative values pass through and resolve to an
// empty page downstream.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// pageCategoryIDs collects the distinct category ids appearing on the given
// page, sorted ascending. The projection is page-scoped on purpose: it
// reflects what the client currently shows, not the full result set.
func pageCategoryIDs(page []models.Question) []uint {
	set := make(map[uint]bool, len(page))
	for _, q := range page {
		set[q.CategoryID] = true
	}

	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

func categoryMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, cat := range categories {
		m[cat.ID] = cat.Type
	}
	return m
}

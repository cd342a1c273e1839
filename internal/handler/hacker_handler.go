package handler

import (
	"errors"
	"net/http"
	"strings"

	"hackpass/internal/service"
	apperrors "hackpass/pkg/app_errors"
	"hackpass/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HackerHandler struct {
	service service.RegistrationService
}

func NewHackerHandler(service service.RegistrationService) *HackerHandler {
	return &HackerHandler{service: service}
}

func (h *HackerHandler) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	r.POST("/add_hacker", adminOnly, h.AddHacker)
	r.GET("/api/hackers", h.SearchHackers)
}

// AddHackerRequest 後台手動新增參加者
type AddHackerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *HackerHandler) AddHacker(c *gin.Context) {
	var req AddHackerRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.AddHacker(c, req.Name, req.Email)
	if err != nil {
		h.handleError(c, err, "AddHacker")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *HackerHandler) SearchHackers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	hackers, err := h.service.SearchHackers(c, query)
	if err != nil {
		h.handleError(c, err, "SearchHackers")
		return
	}

	c.JSON(http.StatusOK, hackers)
}

func (h *HackerHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Missing name or email")
		errorResponse(c, http.StatusBadRequest, "Missing name or email")
	default:
		// 主寫入失敗把底層訊息帶回去，這是內部工具，給現場操作的人看
		log.Error("Unexpected error")
		errorResponse(c, http.StatusInternalServerError, "Database error: "+err.Error())
	}
}

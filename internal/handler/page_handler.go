package handler

import (
	"net/http"
	"strings"

	"hackpass/internal/service"
	"hackpass/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler 後台頁面。數字會再由前端輪詢 /api/stats 更新，
// 這裡只渲染第一次載入的狀態。
type PageHandler struct {
	events     service.EventService
	attendance service.AttendanceService
}

func NewPageHandler(events service.EventService, attendance service.AttendanceService) *PageHandler {
	return &PageHandler{events: events, attendance: attendance}
}

func (h *PageHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Home)
	r.GET("/event/*name", h.EventDetail)
}

func (h *PageHandler) Home(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	events, err := h.events.Search(c, query)
	if err != nil {
		logger.WithComponent("handler").Error("failed to list events", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"events":       events,
		"search_query": query,
		"user":         CurrentIdentity(c),
	})
}

func (h *PageHandler) EventDetail(c *gin.Context) {
	name := eventNameParam(c)

	stats, err := h.attendance.Stats(c, name)
	if err != nil {
		logger.WithComponent("handler").Error("failed to load event stats", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	// 頁面的 event_count 用全量 distinct，不受 /api/stats 的視窗截斷
	attendeeCount, err := h.attendance.EventAttendeeCount(c, name)
	if err != nil {
		logger.WithComponent("handler").Error("failed to count event attendees", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.HTML(http.StatusOK, "event_detail.html", gin.H{
		"event_name":  name,
		"here":        stats.Here,
		"total":       stats.Total,
		"event_count": attendeeCount,
		"checked_in":  stats.RecentActivity,
		"user":        CurrentIdentity(c),
	})
}

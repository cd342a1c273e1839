package handler

import (
	"errors"
	"net/http"
	"strings"

	"hackpass/internal/service"
	apperrors "hackpass/pkg/app_errors"
	"hackpass/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AttendanceHandler struct {
	service service.AttendanceService
}

func NewAttendanceHandler(service service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

func (h *AttendanceHandler) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	r.POST("/log_attendance", h.LogAttendance)
	r.POST("/remove_attendance", adminOnly, h.RemoveAttendance)
	r.GET("/api/stats/*name", h.GetStats)
	r.GET("/get_eligible_users/*name", h.GetEligibleUsers)
}

// AttendanceRequest 掃描或手動補登的請求
type AttendanceRequest struct {
	GuestID string `json:"guest_id" binding:"required"`
	Event   string `json:"event" binding:"required"`
}

func (h *AttendanceHandler) LogAttendance(c *gin.Context) {
	var req AttendanceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	// QR 內容不是合法的 uuid 就等同查無此人
	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		errorResponse(c, http.StatusNotFound, "Invalid QR Code")
		return
	}

	result, err := h.service.Log(c, guestID, req.Event)
	if err != nil {
		h.handleError(c, err, "LogAttendance")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AttendanceHandler) RemoveAttendance(c *gin.Context) {
	var req AttendanceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid guest id")
		return
	}

	result, err := h.service.Remove(c, guestID, req.Event)
	if err != nil {
		h.handleError(c, err, "RemoveAttendance")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AttendanceHandler) GetStats(c *gin.Context) {
	name := eventNameParam(c)

	stats, err := h.service.Stats(c, name)
	if err != nil {
		h.handleError(c, err, "GetStats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AttendanceHandler) GetEligibleUsers(c *gin.Context) {
	name := eventNameParam(c)

	users, err := h.service.EligibleUsers(c, name)
	if err != nil {
		h.handleError(c, err, "GetEligibleUsers")
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AttendanceHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var checkInRequired *apperrors.CheckInRequiredError
	switch {
	case errors.Is(err, apperrors.ErrHackerNotFound):
		log.Warn("Unknown guest id")
		errorResponse(c, http.StatusNotFound, "Invalid QR Code")
	case errors.As(err, &checkInRequired):
		log.Warn("Check-in gate rejected scan")
		errorResponse(c, http.StatusForbidden, checkInRequired.Error())
	default:
		log.Error("Unexpected error")
		errorResponse(c, http.StatusInternalServerError, "Database error: "+err.Error())
	}
}

// eventNameParam gin 的 *name wildcard 會帶前導斜線，活動名稱本身
// 可能含空白或斜線（對應 Flask 的 path converter）
func eventNameParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("name"), "/")
}

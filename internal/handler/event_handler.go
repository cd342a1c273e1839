package handler

import (
	"errors"
	"fmt"
	"net/http"

	"hackpass/internal/service"
	apperrors "hackpass/pkg/app_errors"
	"hackpass/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	r.POST("/api/create_event", adminOnly, h.CreateEvent)
	r.POST("/api/delete_event", adminOnly, h.DeleteEvent)
}

type CreateEventRequest struct {
	EventName string `json:"event_name"`
}

type DeleteEventRequest struct {
	EventName string `json:"event_name"`
	Password  string `json:"password"`
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	event, err := h.service.Create(c, req.EventName)
	if err != nil {
		h.handleCreateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Event '%s' created successfully!", event.EventName),
	})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	var req DeleteEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if err := h.service.Delete(c, req.EventName, req.Password); err != nil {
		h.handleDeleteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Event '%s' deleted successfully!", req.EventName),
	})
}

func (h *EventHandler) handleCreateError(c *gin.Context, err error) {
	log := logger.WithComponent("handler").With(zap.String("operation", "CreateEvent"), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Missing event name")
		errorResponse(c, http.StatusBadRequest, "Event name is required")
	case errors.Is(err, apperrors.ErrEventExists):
		log.Warn("Event already exists")
		errorResponse(c, http.StatusConflict, "Event already exists")
	default:
		log.Error("Unexpected error")
		errorResponse(c, http.StatusInternalServerError, "Database error: "+err.Error())
	}
}

func (h *EventHandler) handleDeleteError(c *gin.Context, err error) {
	log := logger.WithComponent("handler").With(zap.String("operation", "DeleteEvent"), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Missing event name or password")
		errorResponse(c, http.StatusBadRequest, "Event name and password are required")
	case errors.Is(err, apperrors.ErrDeletePasswordInvalid):
		log.Warn("Invalid delete password")
		errorResponse(c, http.StatusUnauthorized, "Invalid delete password")
	case errors.Is(err, apperrors.ErrProtectedEvent):
		log.Warn("Attempt to delete the main Check-in event")
		errorResponse(c, http.StatusForbidden, "Cannot delete the main Check-in event")
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		errorResponse(c, http.StatusNotFound, "Event not found")
	default:
		log.Error("Unexpected error")
		errorResponse(c, http.StatusInternalServerError, "Database error: "+err.Error())
	}
}

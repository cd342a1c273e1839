package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hackpass/internal/handler"
	"hackpass/internal/model"
	"hackpass/internal/service/mocks"
	"hackpass/internal/session"
	apperrors "hackpass/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupEventRouter(mockService *mocks.EventServiceMock, identity *session.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	eventHandler := handler.NewEventHandler(mockService)
	group := router.Group("/", asIdentity(identity))
	eventHandler.RegisterRoutes(group, handler.RequireAdmin())

	return router
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventRouter(mockService, adminIdentity())

		mockService.On("Create", mock.Anything, "Lunch").
			Return(&model.Event{EventName: "Lunch"}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/create_event", handler.CreateEventRequest{EventName: "Lunch"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w.Body)
		assert.Equal(t, "Event 'Lunch' created successfully!", body["message"])
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInvalidInput", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventRouter(mockService, adminIdentity())

		mockService.On("Create", mock.Anything, "").
			Return(nil, apperrors.ErrInvalidInput).Once()

		req := createJSONHTTPRequest("POST", "/api/create_event", handler.CreateEventRequest{EventName: ""})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w.Body)
		assert.Equal(t, "Event name is required", body["message"])
	})

	t.Run("Failed - ErrEventExists", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventRouter(mockService, adminIdentity())

		mockService.On("Create", mock.Anything, "Lunch").
			Return(nil, apperrors.ErrEventExists).Once()

		req := createJSONHTTPRequest("POST", "/api/create_event", handler.CreateEventRequest{EventName: "Lunch"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		body := decodeBody(t, w.Body)
		assert.Equal(t, "Event already exists", body["message"])
	})

	t.Run("Failed - NotAdmin", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventRouter(mockService, organizerIdentity())

		req := createJSONHTTPRequest("POST", "/api/create_event", handler.CreateEventRequest{EventName: "Lunch"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventRouter(mockService, adminIdentity())

		mockService.On("Delete", mock.Anything, "Lunch", "delete-secret").Return(nil).Once()

		req := createJSONHTTPRequest("POST", "/api/delete_event",
			handler.DeleteEventRequest{EventName: "Lunch", Password: "delete-secret"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w.Body)
		assert.Equal(t, "Event 'Lunch' deleted successfully!", body["message"])
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrDeletePasswordInvalid", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventRouter(mockService, adminIdentity())

		mockService.On("Delete", mock.Anything, "Lunch", "wrong").
			Return(apperrors.ErrDeletePasswordInvalid).Once()

		req := createJSONHTTPRequest("POST", "/api/delete_event",
			handler.DeleteEventRequest{EventName: "Lunch", Password: "wrong"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// 密碼錯是 401，跟角色不符的 403 區分開
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeBody(t, w.Body)
		assert.Equal(t, "Invalid delete password", body["message"])
	})

	t.Run("Failed - ErrProtectedEvent", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventRouter(mockService, adminIdentity())

		mockService.On("Delete", mock.Anything, "Check-in", "delete-secret").
			Return(apperrors.ErrProtectedEvent).Once()

		req := createJSONHTTPRequest("POST", "/api/delete_event",
			handler.DeleteEventRequest{EventName: "Check-in", Password: "delete-secret"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		body := decodeBody(t, w.Body)
		assert.Equal(t, "Cannot delete the main Check-in event", body["message"])
	})

	t.Run("Failed - NotAdmin", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventRouter(mockService, organizerIdentity())

		req := createJSONHTTPRequest("POST", "/api/delete_event",
			handler.DeleteEventRequest{EventName: "Lunch", Password: "delete-secret"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertNotCalled(t, "Delete")
	})
}

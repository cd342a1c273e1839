package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"hackpass/internal/handler"
	"hackpass/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asIdentity 模擬已通過 RequireSession 的請求
func asIdentity(identity *session.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler.SetIdentity(c, identity)
		c.Next()
	}
}

func organizerIdentity() *session.Identity {
	return &session.Identity{Email: "org@x.com", Name: "Organizer", IsAdmin: false}
}

func adminIdentity() *session.Identity {
	return &session.Identity{Email: "admin@x.com", Name: "Admin", IsAdmin: true}
}

func decodeBody(t *testing.T, body *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &decoded))
	return decoded
}

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestContext builds a gin context for an authenticated request. actor 0
// means no authenticated account.
func newTestContext(method, target string, body any, actor int64, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	if actor != 0 {
		c.Set(jwt.AccountIDContextKey, actor)
	}

	return c, writer
}

func idParam(id string) gin.Params {
	return gin.Params{{Key: IDKey, Value: id}}
}

func decodeBody(recorder *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	_ = json.Unmarshal(recorder.Body.Bytes(), &out)
	return out
}

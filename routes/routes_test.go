package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"socialfeed-api/database"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	router := gin.New()
	SetupRoutes(router, db)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), dest))
}

func TestOperationContractEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	// Users
	resp := doJSON(t, router, http.MethodPost, "/api/v1/users", gin.H{"id": "u1", "username": "alice"})
	require.Equal(t, http.StatusCreated, resp.Code)
	resp = doJSON(t, router, http.MethodPost, "/api/v1/users", gin.H{"id": "u2", "username": "bob"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/users/u1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPut, "/api/v1/users/u1", gin.H{"biography": "hi"})
	require.Equal(t, http.StatusOK, resp.Code)

	// Posts
	resp = doJSON(t, router, http.MethodPost, "/api/v1/posts", gin.H{"author_id": "u1", "content": "first post"})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, resp, &created)
	require.NotEmpty(t, created.ID)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/posts?limit=10&offset=0", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var feed []map[string]interface{}
	decode(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "alice", feed[0]["author_username"])

	// Likes: toggle on, toggle off
	likePath := "/api/v1/posts/" + created.ID + "/like"
	resp = doJSON(t, router, http.MethodPost, likePath, gin.H{"user_id": "u2"})
	require.Equal(t, http.StatusOK, resp.Code)
	var toggle struct {
		Liked bool `json:"liked"`
	}
	decode(t, resp, &toggle)
	assert.True(t, toggle.Liked)

	resp = doJSON(t, router, http.MethodPost, likePath, gin.H{"user_id": "u2"})
	require.Equal(t, http.StatusOK, resp.Code)
	decode(t, resp, &toggle)
	assert.False(t, toggle.Liked)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/posts/"+created.ID+"/liked?user_id=u2", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decode(t, resp, &toggle)
	assert.False(t, toggle.Liked)

	// Comments
	resp = doJSON(t, router, http.MethodPost, "/api/v1/posts/"+created.ID+"/comments",
		gin.H{"author_id": "u2", "content": "nice one"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/posts/"+created.ID+"/comments", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var comments []map[string]interface{}
	decode(t, resp, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "bob", comments[0]["username"])

	// Messages and conversations
	resp = doJSON(t, router, http.MethodPost, "/api/v1/messages",
		gin.H{"sender_id": "u1", "receiver_id": "u2", "content": "hey bob"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/v1/conversations/u1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var conversations []map[string]interface{}
	decode(t, resp, &conversations)
	require.Len(t, conversations, 1)
	assert.Equal(t, "bob", conversations[0]["other_username"])

	resp = doJSON(t, router, http.MethodGet, "/api/v1/messages/u2/u1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var chat []map[string]interface{}
	decode(t, resp, &chat)
	require.Len(t, chat, 1)
	assert.Equal(t, "hey bob", chat[0]["content"])

	// Post deletion cascades and then 404s
	resp = doJSON(t, router, http.MethodDelete, "/api/v1/posts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = doJSON(t, router, http.MethodGet, "/api/v1/posts/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreatePostUnknownAuthorReturns404(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/posts",
		gin.H{"author_id": "nobody", "content": "orphan"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestFeedRejectsOversizedLimit(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/v1/posts?limit=500", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

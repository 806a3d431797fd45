package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullFlow walks one user through the whole API surface:
// register → login → post → like (twice) → comment → delete comment.
func TestFullFlow(t *testing.T) {
	app := setupTestApp(t)

	// Register Alice.
	status, body := doJSON(t, app, jsonRequest(http.MethodPost, "/api/users", map[string]string{
		"name":     "Alice",
		"email":    "a@x.com",
		"password": "secret1",
	}, ""))
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, body["token"])

	// Login.
	status, body = doJSON(t, app, jsonRequest(http.MethodPost, "/api/auth", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	}, ""))
	require.Equal(t, http.StatusOK, status)
	token := body["token"].(string)

	// Create a post.
	status, post := doJSON(t, app, jsonRequest(http.MethodPost, "/api/posts", map[string]any{
		"text": "hello",
	}, token))
	require.Equal(t, http.StatusOK, status)
	id := itoa(post["id"].(float64))

	// First like succeeds with exactly one like.
	status, likes := doJSONList(t, app, jsonRequest(http.MethodPut, "/api/posts/like/"+id, nil, token))
	require.Equal(t, http.StatusOK, status)
	require.Len(t, likes, 1)

	// Second identical like fails.
	status, body = doJSON(t, app, jsonRequest(http.MethodPut, "/api/posts/like/"+id, nil, token))
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Post already liked", body["msg"])

	// Comment.
	status, comments := doJSONList(t, app, jsonRequest(http.MethodPost, "/api/posts/comment/"+id, map[string]any{
		"text": "nice",
	}, token))
	require.Equal(t, http.StatusOK, status)
	require.Len(t, comments, 1)
	commentID := itoa(comments[0]["id"].(float64))

	// Delete the comment by its id; the list becomes empty.
	status, comments = doJSONList(t, app, jsonRequest(http.MethodDelete, "/api/posts/comment/"+id+"/"+commentID, nil, token))
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, comments)
}

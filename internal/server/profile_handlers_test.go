package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfile(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "Alice", "a@x.com")

	t.Run("status and skills required", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodPost, "/api/profile", map[string]any{}, token))
		assert.Equal(t, http.StatusBadRequest, status)
		msgs := errorMsgs(body)
		assert.Contains(t, msgs, "Status is required")
		assert.Contains(t, msgs, "Skills is required")
	})

	t.Run("creates on first call", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodPost, "/api/profile", map[string]any{
			"status": "Developer",
			"skills": "Go, SQL ,docker",
			"bio":    "hello",
		}, token))
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Developer", body["status"])
		assert.Equal(t, []any{"Go", "SQL", "docker"}, body["skills"])
		assert.Equal(t, "hello", body["bio"])
	})

	t.Run("omitted fields survive a later upsert", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodPost, "/api/profile", map[string]any{
			"status": "Senior Developer",
			"skills": "Go",
		}, token))
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Senior Developer", body["status"])
		assert.Equal(t, "hello", body["bio"])
	})
}

func TestGetMyProfile_NoProfile(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "Alice", "a@x.com")

	status, body := doJSON(t, app, jsonRequest(http.MethodGet, "/api/profile/me", nil, token))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "There is no profile for this user", body["msg"])
}

func TestListAndGetProfiles(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "Alice", "a@x.com")
	doJSON(t, app, jsonRequest(http.MethodPost, "/api/profile", map[string]any{
		"status": "Developer",
		"skills": "Go",
	}, token))

	t.Run("list is public", func(t *testing.T) {
		status, profiles := doJSONList(t, app, jsonRequest(http.MethodGet, "/api/profile", nil, ""))
		require.Equal(t, http.StatusOK, status)
		require.Len(t, profiles, 1)
		user, ok := profiles[0]["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Alice", user["name"])
	})

	t.Run("joined user carries name and avatar only", func(t *testing.T) {
		status, profiles := doJSONList(t, app, jsonRequest(http.MethodGet, "/api/profile", nil, ""))
		require.Equal(t, http.StatusOK, status)
		require.Len(t, profiles, 1)
		user, ok := profiles[0]["user"].(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, user, "email")
		assert.NotContains(t, user, "created_at")
		assert.Contains(t, user, "avatar")
	})

	t.Run("by owner", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodGet, "/api/profile/user/1", nil, ""))
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Developer", body["status"])
	})

	t.Run("unknown owner", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodGet, "/api/profile/user/99", nil, ""))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Profile not found", body["msg"])
	})

	t.Run("malformed owner id", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodGet, "/api/profile/user/abc", nil, ""))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Profile not found", body["msg"])
	})
}

func TestExperienceLifecycle(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "Alice", "a@x.com")

	t.Run("add without profile", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodPut, "/api/profile/experience", map[string]any{
			"title":   "Engineer",
			"company": "Acme",
			"from":    "2020-01-01",
		}, token))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "There is no profile for this user", body["msg"])
	})

	doJSON(t, app, jsonRequest(http.MethodPost, "/api/profile", map[string]any{
		"status": "Developer",
		"skills": "Go",
	}, token))

	t.Run("required fields", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodPut, "/api/profile/experience", map[string]any{}, token))
		assert.Equal(t, http.StatusBadRequest, status)
		msgs := errorMsgs(body)
		assert.Contains(t, msgs, "Title is required")
		assert.Contains(t, msgs, "Company is required")
		assert.Contains(t, msgs, "From date is required")
	})

	var entryID float64
	t.Run("add", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodPut, "/api/profile/experience", map[string]any{
			"title":   "Engineer",
			"company": "Acme",
			"from":    "2020-01-01",
			"current": true,
		}, token))
		require.Equal(t, http.StatusOK, status)
		entries, ok := body["experience"].([]any)
		require.True(t, ok)
		require.Len(t, entries, 1)
		entry := entries[0].(map[string]any)
		assert.Equal(t, "Engineer", entry["title"])
		entryID = entry["id"].(float64)
	})

	t.Run("newest entry first", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodPut, "/api/profile/experience", map[string]any{
			"title":   "Staff Engineer",
			"company": "Acme",
			"from":    "2023-06-01",
		}, token))
		require.Equal(t, http.StatusOK, status)
		entries := body["experience"].([]any)
		require.Len(t, entries, 2)
		assert.Equal(t, "Staff Engineer", entries[0].(map[string]any)["title"])
	})

	t.Run("remove unknown entry", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodDelete, "/api/profile/experience/999", nil, token))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Experience not found", body["msg"])
	})

	t.Run("remove", func(t *testing.T) {
		status, body := doJSON(t, app, jsonRequest(http.MethodDelete, "/api/profile/experience/"+itoa(entryID), nil, token))
		require.Equal(t, http.StatusOK, status)
		entries := body["experience"].([]any)
		require.Len(t, entries, 1)
		assert.Equal(t, "Staff Engineer", entries[0].(map[string]any)["title"])
	})
}

func TestEducationLifecycle(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "Alice", "a@x.com")
	doJSON(t, app, jsonRequest(http.MethodPost, "/api/profile", map[string]any{
		"status": "Developer",
		"skills": "Go",
	}, token))

	status, body := doJSON(t, app, jsonRequest(http.MethodPut, "/api/profile/education", map[string]any{
		"school":       "State University",
		"degree":       "BSc",
		"fieldofstudy": "CS",
		"from":         "2014-09-01",
		"to":           "2018-06-30",
	}, token))
	require.Equal(t, http.StatusOK, status)
	entries := body["education"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "State University", entry["school"])

	status, body = doJSON(t, app, jsonRequest(http.MethodDelete, "/api/profile/education/"+itoa(entry["id"].(float64)), nil, token))
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["education"])
}

func TestDeleteAccount(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "Alice", "a@x.com")
	doJSON(t, app, jsonRequest(http.MethodPost, "/api/profile", map[string]any{
		"status": "Developer",
		"skills": "Go",
	}, token))
	doJSON(t, app, jsonRequest(http.MethodPost, "/api/posts", map[string]any{"text": "hello"}, token))

	status, body := doJSON(t, app, jsonRequest(http.MethodDelete, "/api/profile", nil, token))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "profile and user deleted", body["msg"])

	// The profile is gone from the public listing.
	status, profiles := doJSONList(t, app, jsonRequest(http.MethodGet, "/api/profile", nil, ""))
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, profiles)

	// Login no longer works.
	status, _ = doJSON(t, app, jsonRequest(http.MethodPost, "/api/auth", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	}, ""))
	assert.Equal(t, http.StatusBadRequest, status)
}

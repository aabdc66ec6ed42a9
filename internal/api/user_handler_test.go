package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/mocks"
)

var errTestStore = errors.New("store unavailable")

func TestGetMe(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(mocks.NewMockUserStore(), mocks.NewMockPostStore())

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()

		user := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}
		req := newPostRequest(t, http.MethodGet, "/api/users/me", nil, user, "")
		recorder := httptest.NewRecorder()
		handler.GetMe(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp UserResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("no user in context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		recorder := httptest.NewRecorder()
		handler.GetMe(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestGetMeNeverExposesPasswordHash(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(mocks.NewMockUserStore(), mocks.NewMockPostStore())

	user := &domain.User{
		ID:             7,
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$secret.hash.material",
	}
	req := newPostRequest(t, http.MethodGet, "/api/users/me", nil, user, "")
	recorder := httptest.NewRecorder()
	handler.GetMe(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "secret.hash.material")
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	t.Run("all users, oldest first", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		for _, name := range []string{"alice", "bob", "carol"} {
			user, err := domainUser(name, name+"@example.com")
			require.NoError(t, err)
			require.NoError(t, userStore.Create(context.Background(), user))
		}
		handler := NewUserHandler(userStore, mocks.NewMockPostStore())

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		recorder := httptest.NewRecorder()
		handler.ListUsers(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp []UserResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		require.Len(t, resp, 3)
		assert.Equal(t, "alice", resp[0].Username)
		assert.Equal(t, "carol", resp[2].Username)
		assert.NotContains(t, recorder.Body.String(), "hashed")
	})

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()

		handler := NewUserHandler(mocks.NewMockUserStore(), mocks.NewMockPostStore())

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		recorder := httptest.NewRecorder()
		handler.ListUsers(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.GetError = errTestStore
		handler := NewUserHandler(userStore, mocks.NewMockPostStore())

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		recorder := httptest.NewRecorder()
		handler.ListUsers(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestListUserPosts(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	author, err := domainUser("alice", "alice@example.com")
	require.NoError(t, err)
	author.ID = 1
	userStore.Users[author.ID] = author

	postStore := mocks.NewMockPostStore()
	seedPost(t, postStore, "First", "Hello.", author.ID)
	seedPost(t, postStore, "Second", "Hello again.", author.ID)
	seedPost(t, postStore, "Someone else's", "Not alice.", 2)

	handler := NewUserHandler(userStore, postStore)

	tests := []struct {
		name       string
		pathID     string
		wantStatus int
		wantCount  int
	}{
		{"author with posts", "1", http.StatusOK, 2},
		{"unknown user", "999", http.StatusNotFound, 0},
		{"non-numeric id", "abc", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := newPostRequest(t, http.MethodGet, "/api/users/"+tt.pathID+"/posts", nil, nil, tt.pathID)
			recorder := httptest.NewRecorder()
			handler.ListUserPosts(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				var resp []PostResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Len(t, resp, tt.wantCount)
				for _, item := range resp {
					assert.Equal(t, author.ID, item.AuthorID)
				}
			}
		})
	}
}

func TestListUserPostsEmptyIsNotNotFound(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	author, err := domainUser("quiet", "quiet@example.com")
	require.NoError(t, err)
	author.ID = 3
	userStore.Users[author.ID] = author

	handler := NewUserHandler(userStore, mocks.NewMockPostStore())

	req := newPostRequest(t, http.MethodGet, "/api/users/3/posts", nil, nil, "3")
	recorder := httptest.NewRecorder()
	handler.ListUserPosts(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/blog-api/internal/api/shared"
	"github.com/inkpost/blog-api/internal/domain"
	"github.com/inkpost/blog-api/internal/mocks"
)

// newPostRequest builds a request with an optional authenticated user and
// an optional {id} path parameter, the way the router would present it.
func newPostRequest(
	t *testing.T,
	method, target string,
	payload interface{},
	user *domain.User,
	pathID string,
) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	ctx := req.Context()
	if user != nil {
		ctx = context.WithValue(ctx, shared.UserContextKey, user)
	}
	if pathID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", pathID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func seedPost(t *testing.T, postStore *mocks.MockPostStore, title, body string, authorID int64) *domain.Post {
	t.Helper()

	post, err := domain.NewPost(title, body, authorID)
	require.NoError(t, err)
	require.NoError(t, postStore.Create(context.Background(), post))
	return post
}

func TestCreatePost(t *testing.T) {
	t.Parallel()

	author := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name       string
		user       *domain.User
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name:       "valid post",
			user:       author,
			payload:    map[string]interface{}{"title": "First", "body": "Hello, world."},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unauthenticated",
			user:       nil,
			payload:    map[string]interface{}{"title": "First", "body": "Hello, world."},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing title",
			user:       author,
			payload:    map[string]interface{}{"body": "Hello, world."},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing body",
			user:       author,
			payload:    map[string]interface{}{"title": "First"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			postStore := mocks.NewMockPostStore()
			handler := NewPostHandler(postStore)

			req := newPostRequest(t, http.MethodPost, "/api/posts", tt.payload, tt.user, "")
			recorder := httptest.NewRecorder()
			handler.CreatePost(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp PostResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "First", resp.Title)
				assert.Equal(t, author.ID, resp.AuthorID)
				assert.NotZero(t, resp.ID)
			}
		})
	}
}

func TestGetPost(t *testing.T) {
	t.Parallel()

	postStore := mocks.NewMockPostStore()
	post := seedPost(t, postStore, "First", "Hello, world.", 7)
	handler := NewPostHandler(postStore)

	tests := []struct {
		name       string
		pathID     string
		wantStatus int
	}{
		{"existing post", fmt.Sprint(post.ID), http.StatusOK},
		{"absent post", "999", http.StatusNotFound},
		{"non-numeric id", "abc", http.StatusBadRequest},
		{"negative id", "-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := newPostRequest(t, http.MethodGet, "/api/posts/"+tt.pathID, nil, nil, tt.pathID)
			recorder := httptest.NewRecorder()
			handler.GetPost(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				var resp PostResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, post.ID, resp.ID)
			}
		})
	}
}

func TestListPosts(t *testing.T) {
	t.Parallel()

	postStore := mocks.NewMockPostStore()
	seedPost(t, postStore, "Go generics", "A look at type parameters.", 1)
	seedPost(t, postStore, "Postgres tips", "Indexes and query plans.", 1)
	seedPost(t, postStore, "Weekend notes", "Nothing about databases here.", 2)
	handler := NewPostHandler(postStore)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantItems  int
		wantTotal  int
	}{
		{"default page", "", http.StatusOK, 3, 3},
		{"keyword filter", "?keyword=postgres", http.StatusOK, 1, 1},
		{"keyword matches body", "?keyword=databases", http.StatusOK, 1, 1},
		{"small page size", "?page=2&size=2", http.StatusOK, 1, 3},
		{"page past the end", "?page=9&size=10", http.StatusOK, 0, 3},
		{"zero page", "?page=0", http.StatusUnprocessableEntity, 0, 0},
		{"non-numeric page", "?page=x", http.StatusUnprocessableEntity, 0, 0},
		{"zero size", "?size=0", http.StatusUnprocessableEntity, 0, 0},
		{"oversized size", "?size=101", http.StatusUnprocessableEntity, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/posts"+tt.query, nil)
			recorder := httptest.NewRecorder()
			handler.ListPosts(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				var resp PostPageResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Len(t, resp.Items, tt.wantItems)
				assert.Equal(t, tt.wantTotal, resp.Total)
			}
		})
	}
}

func TestUpdatePost(t *testing.T) {
	t.Parallel()

	owner := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}
	stranger := &domain.User{ID: 8, Username: "bob", Email: "bob@example.com"}
	newTitle := "Updated title"

	tests := []struct {
		name       string
		user       *domain.User
		pathID     string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name:       "owner updates title",
			user:       owner,
			payload:    map[string]interface{}{"title": newTitle},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthenticated",
			user:       nil,
			payload:    map[string]interface{}{"title": newTitle},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not the author",
			user:       stranger,
			payload:    map[string]interface{}{"title": newTitle},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "absent post",
			user:       owner,
			pathID:     "999",
			payload:    map[string]interface{}{"title": newTitle},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric id",
			user:       owner,
			pathID:     "abc",
			payload:    map[string]interface{}{"title": newTitle},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty title rejected",
			user:       owner,
			payload:    map[string]interface{}{"title": ""},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			postStore := mocks.NewMockPostStore()
			post := seedPost(t, postStore, "First", "Hello, world.", owner.ID)
			handler := NewPostHandler(postStore)

			pathID := tt.pathID
			if pathID == "" {
				pathID = fmt.Sprint(post.ID)
			}

			req := newPostRequest(t, http.MethodPut, "/api/posts/"+pathID, tt.payload, tt.user, pathID)
			recorder := httptest.NewRecorder()
			handler.UpdatePost(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp PostResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, newTitle, resp.Title)
				assert.Equal(t, "Hello, world.", resp.Body)
			} else {
				// A rejected update must not leak through to storage.
				current, err := postStore.GetByID(context.Background(), post.ID)
				require.NoError(t, err)
				assert.Equal(t, "First", current.Title)
			}
		})
	}
}

func TestDeletePost(t *testing.T) {
	t.Parallel()

	owner := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}
	stranger := &domain.User{ID: 8, Username: "bob", Email: "bob@example.com"}

	tests := []struct {
		name        string
		user        *domain.User
		pathID      string
		wantStatus  int
		wantRemoved bool
	}{
		{"owner deletes", owner, "", http.StatusNoContent, true},
		{"unauthenticated", nil, "", http.StatusUnauthorized, false},
		{"not the author", stranger, "", http.StatusForbidden, false},
		{"absent post", owner, "999", http.StatusNotFound, false},
		{"non-numeric id", owner, "abc", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			postStore := mocks.NewMockPostStore()
			post := seedPost(t, postStore, "First", "Hello, world.", owner.ID)
			handler := NewPostHandler(postStore)

			pathID := tt.pathID
			if pathID == "" {
				pathID = fmt.Sprint(post.ID)
			}

			req := newPostRequest(t, http.MethodDelete, "/api/posts/"+pathID, nil, tt.user, pathID)
			recorder := httptest.NewRecorder()
			handler.DeletePost(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, recorder.Body.String())
			}

			_, err := postStore.GetByID(context.Background(), post.ID)
			if tt.wantRemoved {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

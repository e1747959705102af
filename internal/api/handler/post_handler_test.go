package handler

import (
	"net/http"
	"testing"

	"github.com/soomin/lingocare/internal/api/dto"
)

func TestBlogListsPublishedOnly(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		expectedIDs   []string // newest first
		expectedTotal int
	}{
		{
			name:          "english blog hides drafts",
			path:          "/blog/en",
			expectedIDs:   []string{"post-002", "post-001"},
			expectedTotal: 2,
		},
		{
			name:          "korean blog hides drafts",
			path:          "/blog/ko",
			expectedIDs:   []string{"post-004"},
			expectedTotal: 1,
		},
		{
			name:          "unknown locale is empty",
			path:          "/blog/de",
			expectedIDs:   []string{},
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			defer env.cleanup()
			env.seedPosts(t)

			w := env.makeRequest(t, http.MethodGet, tt.path, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
			}

			resp := parseResponse[dto.PostListResponse](t, w)

			if len(resp.Items) != len(tt.expectedIDs) {
				t.Fatalf("expected %d items, got %d", len(tt.expectedIDs), len(resp.Items))
			}
			for i, id := range tt.expectedIDs {
				if resp.Items[i].ID != id {
					t.Errorf("item[%d]: expected ID %s, got %s", i, id, resp.Items[i].ID)
				}
				if resp.Items[i].Status != "published" {
					t.Errorf("item[%d]: expected published status, got %s", i, resp.Items[i].Status)
				}
			}
			if resp.Pagination.Total != tt.expectedTotal {
				t.Errorf("expected total %d, got %d", tt.expectedTotal, resp.Pagination.Total)
			}
		})
	}
}

func TestBlogGetPublishedPost(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	env.seedPosts(t)

	w := env.makeRequest(t, http.MethodGet, "/blog/en/knee-surgery-guide", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	resp := parseResponse[dto.PostResponse](t, w)
	if resp.ID != "post-001" {
		t.Errorf("expected post-001, got %s", resp.ID)
	}
	if resp.PublishedAt == nil {
		t.Error("expected published_at to be set")
	}
}

func TestBlogGetHidesDraft(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	env.seedPosts(t)

	// post-003 exists but is a draft
	w := env.makeRequest(t, http.MethodGet, "/blog/en/visa-checklist", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d\nBody: %s", w.Code, w.Body.String())
	}
}

func TestCreatePost(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	body := map[string]interface{}{
		"locale": "en",
		"slug":   "recovery-tips",
		"title":  "Recovery Tips",
		"body":   "Rest well.",
	}

	w := env.makeRequest(t, http.MethodPost, "/posts", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d\nBody: %s", w.Code, w.Body.String())
	}

	resp := parseResponse[dto.PostResponse](t, w)
	if resp.ID == "" {
		t.Error("expected a generated post ID")
	}
	if resp.Status != "draft" {
		t.Errorf("expected draft status, got %s", resp.Status)
	}
	if resp.PublishedAt != nil {
		t.Error("expected published_at to be unset on a draft")
	}
}

func TestCreatePostRejectsInvalidSlug(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	body := map[string]interface{}{
		"locale": "en",
		"slug":   "Invalid Slug!",
		"title":  "Bad Slug",
	}

	w := env.makeRequest(t, http.MethodPost, "/posts", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d\nBody: %s", w.Code, w.Body.String())
	}
}

func TestCreatePostRejectsDuplicateSlug(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	env.seedPosts(t)

	body := map[string]interface{}{
		"locale": "en",
		"slug":   "knee-surgery-guide",
		"title":  "Duplicate",
	}

	w := env.makeRequest(t, http.MethodPost, "/posts", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d\nBody: %s", w.Code, w.Body.String())
	}
}

func TestPublishPost(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	env.seedPosts(t)

	// post-003 is a draft
	w := env.makeRequest(t, http.MethodPost, "/posts/post-003/publish", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	resp := parseResponse[dto.PostResponse](t, w)
	if resp.Status != "published" {
		t.Errorf("expected published status, got %s", resp.Status)
	}
	if resp.PublishedAt == nil {
		t.Error("expected published_at to be set")
	}

	// The post is now visible on the public blog
	w = env.makeRequest(t, http.MethodGet, "/blog/en/visa-checklist", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected published post to be visible, got %d", w.Code)
	}
}

func TestPublishPostTwiceConflicts(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	env.seedPosts(t)

	// post-001 is already published
	w := env.makeRequest(t, http.MethodPost, "/posts/post-001/publish", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d\nBody: %s", w.Code, w.Body.String())
	}
}

func TestListPostsFilterByStatus(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	env.seedPosts(t)

	w := env.makeRequest(t, http.MethodGet, "/posts?status=draft", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	resp := parseResponse[dto.PostListResponse](t, w)
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.Status != "draft" {
			t.Errorf("expected draft status, got %s", item.Status)
		}
	}
}

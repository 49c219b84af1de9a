package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"herald/pkg/models"
)

func newsletterRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	api := router.Group("/api", authAs(testUserID))
	api.GET("/newsletters", h.ListNewsletters)
	api.POST("/newsletters", h.CreateNewsletter)
	api.DELETE("/newsletters/:id", h.DeleteNewsletter)
	return router
}

func TestListNewsletters(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := newsletterRouter(h)

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, name").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description", "website_url", "niche", "subscriber_count", "created_at", "updated_at"}).
			AddRow("n1", testUserID, "The Weekly Byte", "Tech news", "https://example.com", "tech", 1200, now, now))

	w := performJSON(router, http.MethodGet, "/api/newsletters", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Newsletters []models.Newsletter `json:"newsletters"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Newsletters) != 1 || resp.Newsletters[0].Name != "The Weekly Byte" {
		t.Errorf("unexpected newsletters: %+v", resp.Newsletters)
	}
}

func TestCreateNewsletter(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := newsletterRouter(h)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO newsletters").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("n1", now, now))

	w := performJSON(router, http.MethodPost, "/api/newsletters",
		`{"name": "The Weekly Byte", "niche": "tech", "subscriberCount": 500}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Newsletter    models.Newsletter `json:"newsletter"`
		WebhookSecret string            `json:"webhook_secret"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Newsletter.ID != "n1" {
		t.Errorf("unexpected newsletter: %+v", resp.Newsletter)
	}
	if len(resp.WebhookSecret) != 64 {
		t.Errorf("expected 32-byte hex webhook secret, got %q", resp.WebhookSecret)
	}
}

func TestCreateNewsletterRequiresName(t *testing.T) {
	h, _ := newTestHandlers(t, nil)
	router := newsletterRouter(h)

	w := performJSON(router, http.MethodPost, "/api/newsletters", `{"niche": "tech"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteNewsletterNotFound(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := newsletterRouter(h)

	mock.ExpectExec("DELETE FROM newsletters").
		WithArgs("missing", testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := performJSON(router, http.MethodDelete, "/api/newsletters/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteNewsletter(t *testing.T) {
	h, mock := newTestHandlers(t, nil)
	router := newsletterRouter(h)

	mock.ExpectExec("DELETE FROM newsletters").
		WithArgs("n1", testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := performJSON(router, http.MethodDelete, "/api/newsletters/n1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

// Package handlers implements the HTTP API surface: auth, newsletter
// and campaign CRUD, landing pages, the cross-promotion directory, and
// the generation endpoints.
package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"herald/internal/adcopy"
	"herald/internal/promokit"
	"herald/internal/seo"
	"herald/pkg/ctxkeys"
	"herald/pkg/logging"
)

type Handlers struct {
	db        *sql.DB
	logger    logging.Logger
	metrics   *Metrics
	jwtSecret []byte
	generator *adcopy.Generator
	kits      *promokit.Generator
	optimizer *seo.Optimizer
}

func New(db *sql.DB, logger logging.Logger, metrics *Metrics, jwtSecret []byte, generator *adcopy.Generator, kits *promokit.Generator, optimizer *seo.Optimizer) *Handlers {
	return &Handlers{
		db:        db,
		logger:    logger,
		metrics:   metrics,
		jwtSecret: jwtSecret,
		generator: generator,
		kits:      kits,
		optimizer: optimizer,
	}
}

// userID returns the authenticated caller set by the JWT middleware.
func (h *Handlers) userID(c *gin.Context) string {
	return c.GetString(string(ctxkeys.KeyUserID))
}

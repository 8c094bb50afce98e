package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tokoclient/backend/internal/domain"
	"github.com/tokoclient/backend/internal/negotiate"
	"github.com/tokoclient/backend/internal/render"
	"github.com/tokoclient/backend/internal/router"
	"github.com/tokoclient/backend/internal/version"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"

	notFoundReason = "404 Not found"
)

// pageRepresentations are the types the info and 404 endpoints can produce
var pageRepresentations = []string{negotiate.TextHTML, negotiate.ApplicationJSON}

// CatalogUsecase is the data-fetching side of the gateway
type CatalogUsecase interface {
	Search(ctx context.Context, keyword string) (*domain.SearchResult, error)
	Lookup(ctx context.Context, seller, product string) (*domain.ProductDetail, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog  CatalogUsecase
	renderer *render.Renderer
	build    string
	log      zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog CatalogUsecase, renderer *render.Renderer, build string, log zerolog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		renderer: renderer,
		build:    build,
		log:      log,
	}
}

// Dispatch routes every request through router.Route
func (h *Handler) Dispatch(c *gin.Context) {
	match := router.Route(c.Request.Method, c.Request.URL.EscapedPath())
	c.Set("route", match.Kind.String())

	switch match.Kind {
	case router.KindHead:
		c.Status(http.StatusOK)
	case router.KindInfo:
		h.Info(c)
	case router.KindSearch:
		h.Search(c, match.Args[0])
	case router.KindLookup:
		h.Lookup(c, match.Args[0], match.Args[1])
	default:
		h.NotFound(c)
	}
}

// Info describes the service in the negotiated representation
func (h *Handler) Info(c *gin.Context) {
	switch h.negotiate(c) {
	case negotiate.TextHTML:
		page, err := h.renderer.HTML(render.VersionPage,
			render.R("$title", version.AppName),
			render.R("$build", h.build),
		)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Data(http.StatusOK, contentTypeHTML, page)
	case negotiate.ApplicationJSON:
		h.writeJSON(c, http.StatusOK, domain.AppInfo{Name: version.AppName, Build: h.build, Success: true})
	default:
		c.Data(http.StatusOK, contentTypeText, render.Text(version.Description(h.build)))
	}
}

// Search handles keyword search requests
func (h *Handler) Search(c *gin.Context, keyword string) {
	result, err := h.catalog.Search(c.Request.Context(), keyword)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writeJSON(c, http.StatusOK, result)
}

// Lookup handles product detail requests
func (h *Handler) Lookup(c *gin.Context, seller, product string) {
	detail, err := h.catalog.Lookup(c.Request.Context(), seller, product)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writeJSON(c, http.StatusOK, detail)
}

// NotFound answers unmatched routes with a negotiated 404
func (h *Handler) NotFound(c *gin.Context) {
	switch h.negotiate(c) {
	case negotiate.TextHTML:
		page, err := h.renderer.HTML(render.NotFoundPage, render.R("$title", version.AppName))
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Data(http.StatusNotFound, contentTypeHTML, page)
	case negotiate.ApplicationJSON:
		h.writeJSON(c, http.StatusNotFound, domain.NewErrorPayload(notFoundReason))
	default:
		c.Data(http.StatusNotFound, contentTypeText, render.Text(notFoundReason))
	}
}

func (h *Handler) negotiate(c *gin.Context) string {
	values := c.Request.Header.Values("Accept")
	return negotiate.Negotiate(strings.Join(values, ","), len(values) > 0, pageRepresentations, negotiate.TextPlain)
}

// fail renders a classified error. Only server-side faults are logged as errors.
func (h *Handler) fail(c *gin.Context, err error) {
	cls := Classify(err)

	if cls.Fault() {
		h.log.Error().
			Err(err).
			Str("kind", string(cls.Kind)).
			Str("request_id", c.GetString(requestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		_ = c.Error(err)
	}

	h.writeJSON(c, cls.Status, domain.NewErrorPayload(cls.Reason))
}

func (h *Handler) writeJSON(c *gin.Context, status int, v any) {
	body, err := render.JSON(v)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
		c.Data(http.StatusInternalServerError, contentTypeText, render.Text("Internal server error"))
		return
	}
	c.Data(status, contentTypeJSON, body)
}

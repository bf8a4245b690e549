package entity

import (
	"net/http"

	"bbws/internal/httpx"
)

// HTTPHandler serves the single-entity lookups for one kind.
type HTTPHandler struct {
	service *Service
	kind    Kind
}

func NewHTTPHandler(service *Service, kind Kind) *HTTPHandler {
	return &HTTPHandler{service: service, kind: kind}
}

// Get handles GET /{kind}/{bbid}
// @Summary Get entity basic info
// @Tags lookup
// @Produce json
// @Param kind path string true "Entity kind" Enums(author, edition, edition-group, publisher, work)
// @Param bbid path string true "Entity BBID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /{kind}/{bbid} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), h.kind, r.PathValue("bbid"))
	if err != nil {
		httpx.WriteError(w, r, err, h.notFound())
		return
	}
	httpx.JSONSuccess(w, r, p, nil)
}

// Aliases handles GET /{kind}/{bbid}/aliases
func (h *HTTPHandler) Aliases(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Aliases(r.Context(), h.kind, r.PathValue("bbid"))
	if err != nil {
		httpx.WriteError(w, r, err, h.notFound())
		return
	}
	httpx.JSONSuccess(w, r, list, nil)
}

// Identifiers handles GET /{kind}/{bbid}/identifiers
func (h *HTTPHandler) Identifiers(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Identifiers(r.Context(), h.kind, r.PathValue("bbid"))
	if err != nil {
		httpx.WriteError(w, r, err, h.notFound())
		return
	}
	httpx.JSONSuccess(w, r, list, nil)
}

func (h *HTTPHandler) notFound() string {
	return h.kind.String() + " not found"
}

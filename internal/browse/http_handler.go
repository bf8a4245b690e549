package browse

import (
	"net/http"

	"bbws/internal/entity"
	"bbws/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	target  entity.Kind
}

func NewHTTPHandler(service *Service, target entity.Kind) *HTTPHandler {
	return &HTTPHandler{service: service, target: target}
}

// Browse godoc
// @Summary Browse entities associated with an anchor entity
// @Tags browse
// @Produce json
// @Param format query string false "Edition format filter"
// @Param language query string false "Language filter"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /{kind} [get]
func (h *HTTPHandler) Browse(w http.ResponseWriter, r *http.Request) {
	c, err := ParseCriteria(r.URL.Query(), h.target)
	if err != nil {
		httpx.WriteError(w, r, err, "")
		return
	}

	result, err := h.service.Browse(r.Context(), c)
	if err != nil {
		httpx.WriteError(w, r, err, c.AnchorKind.String()+" not found")
		return
	}

	httpx.JSONSuccess(w, r, result, map[string]interface{}{
		"count": len(result.Records),
	})
}

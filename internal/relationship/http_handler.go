package relationship

import (
	"net/http"

	"bbws/internal/entity"
	"bbws/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	kind    entity.Kind
}

func NewHTTPHandler(service *Service, kind entity.Kind) *HTTPHandler {
	return &HTTPHandler{service: service, kind: kind}
}

// List handles GET /{kind}/{bbid}/relationships
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ForEntity(r.Context(), h.kind, r.PathValue("bbid"))
	if err != nil {
		httpx.WriteError(w, r, err, h.kind.String()+" not found")
		return
	}
	httpx.JSONSuccess(w, r, list, nil)
}

package http

import (
	"net/http"

	"github.com/octopus-msa/service02/internal/utils"
	"github.com/octopus-msa/service02/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	greeting := h.services.GreetingService.Welcome(r.Context())

	utils.WriteText(w, greeting, http.StatusOK)
}

func (h *Handler) message(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get(secondRequestHeader)
	greeting := h.services.GreetingService.Message(r.Context(), header)

	utils.WriteText(w, greeting, http.StatusOK)
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	body := h.services.DiagnosticsService.Check(r.Context(), models.InboundRequest{
		Host:       r.Host,
		Header:     r.Header,
		ServerPort: utils.ServerPort(r),
	})

	utils.WriteText(w, body, http.StatusOK)
}

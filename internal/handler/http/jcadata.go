package http

import (
	"net/http"

	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/internal/utils"
	"github.com/MKhiriev/jca-proxy/models"
)

// serverQueryParam selects a single record on GET /jcadata.
const serverQueryParam = "server"

// getJcaData answers GET /jcadata[?server=<identifier>] with the requested
// record, or with the whole collection when no identifier is given.
func (h *Handler) getJcaData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identifier := r.URL.Query().Get(serverQueryParam)

	result, err := h.services.JcaDataService.Fetch(r.Context(), identifier)
	if err != nil {
		status := statusFromError(err, fetchErrorStatusMap, http.StatusBadRequest)
		log.Err(err).
			Str("func", "*Handler.getJcaData").
			Str("server", identifier).
			Int("status", status).
			Msg("error fetching jcadata")
		w.WriteHeader(status)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getJcaData").Msg("error writing jcadata response")
	}
}

// updateJcaData answers POST /update. The body must be a single JSON object
// carrying an identifier; it is stored as is.
func (h *Handler) updateJcaData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	record, err := models.DecodeJcaData(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateJcaData").Msg("invalid jcadata body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = h.services.JcaDataService.Save(r.Context(), record); err != nil {
		status := statusFromError(err, saveErrorStatusMap, http.StatusInternalServerError)
		log.Err(err).
			Str("func", "*Handler.updateJcaData").
			Int("status", status).
			Msg("error saving jcadata")
		w.WriteHeader(status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

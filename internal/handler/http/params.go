package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/signbridge/signbridge/models"
)

// parsePage reads the optional "limit" and "offset" query parameters.
// Unparsable or negative values fall back to zero, which the service layer
// replaces with the endpoint's default limit.
func parsePage(r *http.Request) models.HistoryPage {
	var page models.HistoryPage

	if limit, err := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64); err == nil {
		page.Limit = limit
	}
	if offset, err := strconv.ParseUint(r.URL.Query().Get("offset"), 10, 64); err == nil {
		page.Offset = offset
	}

	return page
}

// idParam reads the "{id}" path parameter as a positive integer.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

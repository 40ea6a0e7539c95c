package http

import (
	"net/http"

	"car-rental-backend/internal/service"
)

type reportHandler struct {
	svc service.ReportService
}

// GET /reports/available-vehicles?class=Business
func (h *reportHandler) availableVehicles(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.AvailableVehiclesByClass(r.Context(), r.URL.Query().Get("class"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// GET /reports/open-orders?client=Full+Name
func (h *reportHandler) openOrders(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.OpenOrdersByClient(r.Context(), r.URL.Query().Get("client"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// GET /reports/orders/{id}/statement
func (h *reportHandler) orderStatement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	statement, err := h.svc.OrderFinancials(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statement)
}

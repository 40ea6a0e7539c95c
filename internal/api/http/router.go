package http

import (
	"context"
	"net/http"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/metrics"
	"car-rental-backend/internal/service"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the REST API over svcs.
func NewRouter(svcs *service.Services, health Pinger, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	registerEntity[domain.CarModel, domain.CarModelPatch](r, "/models", svcs.CarModels, nil)
	registerEntity[domain.Vehicle, domain.VehiclePatch](r, "/vehicles", svcs.Vehicles, func(req *http.Request) ([]domain.Vehicle, error) {
		var filter domain.VehicleFilter
		if s := req.URL.Query().Get("status"); s != "" {
			status := domain.VehicleStatus(s)
			filter.Status = &status
		}
		return svcs.Vehicles.ListFiltered(req.Context(), filter)
	})
	registerEntity[domain.Client, domain.ClientPatch](r, "/clients", svcs.Clients, nil)
	registerEntity[domain.Employee, domain.EmployeePatch](r, "/employees", svcs.Employees, nil)
	registerEntity[domain.RentalOrder, domain.RentalOrderPatch](r, "/orders", svcs.Orders, nil)
	registerEntity[domain.Maintenance, domain.MaintenancePatch](r, "/maintenance", svcs.Maintenance, nil)
	registerEntity[domain.Fine, domain.FinePatch](r, "/fines", svcs.Fines, nil)
	registerEntity[domain.Payment, domain.PaymentPatch](r, "/payments", svcs.Payments, nil)
	registerEntity[domain.InsurancePolicy, domain.InsurancePolicyPatch](r, "/insurance", svcs.Insurance, nil)
	registerEntity[domain.Review, domain.ReviewPatch](r, "/reviews", svcs.Reviews, nil)

	reports := &reportHandler{svc: svcs.Reports}
	r.HandleFunc("/reports/available-vehicles", reports.availableVehicles).Methods(http.MethodGet)
	r.HandleFunc("/reports/open-orders", reports.openOrders).Methods(http.MethodGet)
	r.HandleFunc("/reports/orders/{id}/statement", reports.orderStatement).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := health.Ping(req.Context()); err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, jsonResponse{Status: "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSONError(w, http.StatusNotFound, "route not found")
	})

	var h http.Handler = r
	h = requestLogger(h)
	h = metrics.InstrumentHandler(h)
	h = requestID(h)
	h = cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	})(h)
	return h
}

package http

import (
	"context"
	"net/http"

	"car-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

// entityHandler serves the five record operations of one entity.
type entityHandler[E, P any] struct {
	svc  service.EntityService[E, P]
	list func(r *http.Request) ([]E, error)
}

// registerEntity mounts list, get, create, update and delete under prefix.
// The collection answers with and without a trailing slash.
func registerEntity[E, P any](r *mux.Router, prefix string, svc service.EntityService[E, P], list func(*http.Request) ([]E, error)) {
	h := &entityHandler[E, P]{svc: svc, list: list}
	if h.list == nil {
		h.list = func(r *http.Request) ([]E, error) { return svc.List(r.Context()) }
	}

	for _, path := range []string{prefix, prefix + "/"} {
		r.HandleFunc(path, h.handleList).Methods(http.MethodGet)
		r.HandleFunc(path, h.handleCreate).Methods(http.MethodPost)
	}
	r.HandleFunc(prefix+"/{id}", h.handleGet).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/{id}", h.handleUpdate).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc(prefix+"/{id}", h.handleDelete).Methods(http.MethodDelete)
}

func (h *entityHandler[E, P]) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.list(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []E{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *entityHandler[E, P]) handleGet(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(ctx context.Context, id int64) (any, error) {
		return h.svc.Get(ctx, id)
	})
}

func (h *entityHandler[E, P]) handleCreate(w http.ResponseWriter, r *http.Request) {
	var e E
	if err := decodeBody(r, &e); err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), &e)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *entityHandler[E, P]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch P
	if err := decodeBody(r, &patch); err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.withID(w, r, func(ctx context.Context, id int64) (any, error) {
		return h.svc.Update(ctx, id, patch)
	})
}

func (h *entityHandler[E, P]) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(ctx context.Context, id int64) (any, error) {
		if err := h.svc.Delete(ctx, id); err != nil {
			return nil, err
		}
		return deleteResponse{OK: true}, nil
	})
}

func (h *entityHandler[E, P]) withID(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int64) (any, error)) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	body, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

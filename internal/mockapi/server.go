// Package mockapi is a small development backend that serves the resource
// collections over HTTP from a storage.Store. It exists so the gateway's
// live path can be exercised end-to-end locally; the application never
// requires it and degrades to canned data when it is absent.
package mockapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ndgrowth/backoffice/internal/common"
	"github.com/ndgrowth/backoffice/internal/gateway"
	"github.com/ndgrowth/backoffice/internal/logging"
	"github.com/ndgrowth/backoffice/internal/storage"
)

type Server struct {
	st  storage.Store
	log logging.Logger

	// Test seam for generated record ids.
	newID func() string
}

func NewServer(st storage.Store, log logging.Logger) *Server {
	return &Server{st: st, log: log.With("component", "mockapi"), newID: uuid.NewString}
}

// Router builds the chi router: CRUD per collection under /api, plus a
// health probe.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/{collection}", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	})

	return r
}

// records loads a collection from storage as generic JSON objects.
func (s *Server) records(r *http.Request) (string, []map[string]any, error) {
	collection := chi.URLParam(r, "collection")
	if _, err := gateway.MockDataset(collection); err != nil {
		return collection, nil, err
	}

	raw, err := s.st.Get(r.Context(), common.MockKeyPrefix+collection)
	if err != nil {
		return collection, nil, err
	}
	if raw == nil {
		return collection, []map[string]any{}, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return collection, nil, err
	}
	return collection, records, nil
}

func (s *Server) persist(r *http.Request, collection string, records []map[string]any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.st.Set(r.Context(), common.MockKeyPrefix+collection, raw)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	collection, records, err := s.records(r)
	if err != nil {
		s.fail(w, r, collection, err)
		return
	}

	query := r.URL.Query()
	filtered := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		if matchesQuery(rec, query) {
			filtered = append(filtered, rec)
		}
	}

	writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	collection, records, err := s.records(r)
	if err != nil {
		s.fail(w, r, collection, err)
		return
	}

	id := chi.URLParam(r, "id")
	for _, rec := range records {
		if rec["id"] == id {
			writeJSON(w, http.StatusOK, rec)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	collection, records, err := s.records(r)
	if err != nil {
		s.fail(w, r, collection, err)
		return
	}

	var rec map[string]any
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id := s.newID()
	rec["id"] = id
	records = append(records, rec)
	if err := s.persist(r, collection, records); err != nil {
		s.fail(w, r, collection, err)
		return
	}

	s.log.Info(r.Context(), "record created", "collection", collection, "id", id)
	writeJSON(w, http.StatusCreated, gateway.WriteAck{Success: true, ID: id, Message: "created"})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	collection, records, err := s.records(r)
	if err != nil {
		s.fail(w, r, collection, err)
		return
	}

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id := chi.URLParam(r, "id")
	for i, rec := range records {
		if rec["id"] != id {
			continue
		}
		for k, v := range patch {
			if k == "id" {
				continue
			}
			rec[k] = v
		}
		records[i] = rec
		if err := s.persist(r, collection, records); err != nil {
			s.fail(w, r, collection, err)
			return
		}
		writeJSON(w, http.StatusOK, gateway.WriteAck{Success: true, ID: id, Message: "updated"})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	collection, records, err := s.records(r)
	if err != nil {
		s.fail(w, r, collection, err)
		return
	}

	id := chi.URLParam(r, "id")
	for i, rec := range records {
		if rec["id"] != id {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		if err := s.persist(r, collection, records); err != nil {
			s.fail(w, r, collection, err)
			return
		}
		writeJSON(w, http.StatusOK, gateway.WriteAck{Success: true, ID: id, Message: "deleted"})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, collection string, err error) {
	if errors.Is(err, common.ErrUnknownCollection) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	s.log.Error(r.Context(), "request failed", "collection", collection, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

// matchesQuery reports whether every query parameter equals the record's
// field of the same name, comparing stringified values so "true" matches a
// JSON boolean.
func matchesQuery(rec map[string]any, query map[string][]string) bool {
	for key, vals := range query {
		if len(vals) == 0 {
			continue
		}
		field, ok := rec[key]
		if !ok {
			return false
		}
		if fmt.Sprint(field) != vals[0] {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

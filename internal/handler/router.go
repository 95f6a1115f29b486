package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/department-dao/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	deptHandler *DepartmentHandler
}

// NewRouter создаёт новый роутер
func NewRouter(deptHandler *DepartmentHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		deptHandler: deptHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/departments/", r.departmentsRouter)

	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// departmentsRouter обрабатывает все запросы к /departments/
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/departments")
	path = strings.Trim(path, "/")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.List(w, req)
		case http.MethodPost:
			r.deptHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	if strings.Contains(path, "/") {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	// /departments/{id}
	switch req.Method {
	case http.MethodGet:
		r.deptHandler.GetByID(w, req)
	case http.MethodPatch:
		r.deptHandler.Update(w, req)
	case http.MethodDelete:
		r.deptHandler.Delete(w, req)
	default:
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}

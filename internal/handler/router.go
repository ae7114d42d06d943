package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smartpark-payroll-api/internal/middleware"
)

// Banner - ответ на GET /
const Banner = "SmartPark Payroll System API"

// Handlers - набор обработчиков, которые обслуживает роутер
type Handlers struct {
	Auth        *AuthHandler
	Departments *DepartmentHandler
	Employees   *EmployeeHandler
	Salaries    *SalaryHandler
	Reports     *ReportHandler
}

// Router настраивает маршруты API
type Router struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	handlers       Handlers
	allowedOrigins []string
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, allowedOrigins []string, logger *slog.Logger) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		logger:         logger,
		handlers:       handlers,
		allowedOrigins: allowedOrigins,
	}
}

// routes - известные маршруты; по ним строится метка route в метриках
var routes = []string{
	"/",
	"/health",
	"/metrics",
	"/auth/login",
	"/auth/register",
	"/auth/update",
	"/api/employees",
	"/api/departments",
	"/api/salaries",
	"/api/reports/payroll",
	"/api/reports/payroll/export",
	"/api/dashboard/summary",
}

// itemFunc обрабатывает запрос к элементу коллекции по ключу из пути
type itemFunc func(w http.ResponseWriter, r *http.Request, key string)

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.handle("/auth", r.authRouter)
	r.handle("/api/employees", r.collection("/api/employees",
		r.handlers.Employees.List, r.handlers.Employees.Create,
		r.handlers.Employees.Update, r.handlers.Employees.Delete,
	))
	r.handle("/api/departments", r.collection("/api/departments",
		r.handlers.Departments.List, r.handlers.Departments.Create,
		r.handlers.Departments.Update, r.handlers.Departments.Delete,
	))
	r.handle("/api/salaries", r.collection("/api/salaries",
		r.handlers.Salaries.List, r.handlers.Salaries.Create,
		r.handlers.Salaries.Update, r.handlers.Salaries.Delete,
	))
	r.handle("/api/reports", r.reportsRouter)
	r.mux.HandleFunc("/api/dashboard/summary", r.get(r.handlers.Reports.Dashboard))

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.mux.Handle("/metrics", promhttp.Handler())
	r.mux.HandleFunc("/", r.root)

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.CORS(r.allowedOrigins)(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Metrics(routes...)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// handle регистрирует обработчик для пути с завершающим слэшем и без него
func (r *Router) handle(prefix string, h http.HandlerFunc) {
	r.mux.HandleFunc(prefix, h)
	r.mux.HandleFunc(prefix+"/", h)
}

func (r *Router) root(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		notFound(w)
		return
	}
	if req.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(Banner))
}

// authRouter обрабатывает все запросы к /auth/
func (r *Router) authRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.Trim(strings.TrimPrefix(req.URL.Path, "/auth"), "/")

	var (
		method string
		h      http.HandlerFunc
	)
	switch path {
	case "login":
		method, h = http.MethodPost, r.handlers.Auth.Login
	case "register":
		method, h = http.MethodPost, r.handlers.Auth.Register
	case "update":
		method, h = http.MethodPut, r.handlers.Auth.UpdateProfile
	default:
		notFound(w)
		return
	}

	if req.Method != method {
		methodNotAllowed(w)
		return
	}
	h(w, req)
}

// collection строит роутер для ресурса вида /prefix и /prefix/{key}.
// Путь разбирается в экранированном виде, чтобы ключ мог содержать %2F.
func (r *Router) collection(prefix string, list, create http.HandlerFunc, update, remove itemFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		path := strings.Trim(strings.TrimPrefix(req.URL.EscapedPath(), prefix), "/")

		// /prefix
		if path == "" {
			switch req.Method {
			case http.MethodGet:
				list(w, req)
			case http.MethodPost:
				create(w, req)
			default:
				methodNotAllowed(w)
			}
			return
		}

		// /prefix/{key}
		if !strings.Contains(path, "/") {
			key, err := url.PathUnescape(path)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid id", "")
				return
			}
			switch req.Method {
			case http.MethodPut:
				update(w, req, key)
			case http.MethodDelete:
				remove(w, req, key)
			default:
				methodNotAllowed(w)
			}
			return
		}

		notFound(w)
	}
}

// reportsRouter обрабатывает /api/reports/payroll и /api/reports/payroll/export
func (r *Router) reportsRouter(w http.ResponseWriter, req *http.Request) {
	path := strings.Trim(strings.TrimPrefix(req.URL.Path, "/api/reports"), "/")

	switch path {
	case "payroll":
		r.get(r.handlers.Reports.Payroll)(w, req)
	case "payroll/export":
		r.get(r.handlers.Reports.ExportPayroll)(w, req)
	default:
		notFound(w)
	}
}

func (r *Router) get(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		h(w, req)
	}
}

func notFound(w http.ResponseWriter) {
	respondError(w, http.StatusNotFound, "not found", "")
}

func methodNotAllowed(w http.ResponseWriter) {
	respondError(w, http.StatusMethodNotAllowed, "method not allowed", "")
}

// Package api is the thin HTTP front end. Each route decodes a JSON body
// into tool arguments and dispatches to the registry by tool name; the
// core logic lives entirely behind the tools.
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	logcontext "github.com/triply/travelhub/context"
	"github.com/triply/travelhub/log"
	"github.com/triply/travelhub/tools"
)

// Server dispatches HTTP requests to registered tools
type Server struct {
	registry *tools.Registry
}

// NewServer creates the HTTP front end over a tool registry
func NewServer(registry *tools.Registry) *Server {
	return &Server{registry: registry}
}

// Router builds the route table with request ID, CORS and panic recovery
// middleware applied.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/plan-trip", s.toolHandler("plan_trip")).Methods(http.MethodPost)
	r.HandleFunc("/api/compare-destinations", s.toolHandler("compare_destinations")).Methods(http.MethodPost)
	r.HandleFunc("/api/get-weather", s.toolHandler("get_travel_weather")).Methods(http.MethodPost)
	r.HandleFunc("/api/convert-currency", s.toolHandler("convert_currency")).Methods(http.MethodPost)
	r.HandleFunc("/api/translate", s.toolHandler("translate_text")).Methods(http.MethodPost)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
	)

	return requestIDMiddleware(cors(recovery(r)))
}

// requestIDMiddleware attaches a fresh request ID to every request context
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logcontext.WithRequestID(r.Context(), logcontext.NewRequestID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	log.WithFields(map[string]interface{}{"panic": v}).Error("recovered from panic in handler")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// toolHandler builds a handler that forwards the JSON body to one tool.
// Tool failures are soft: status stays 200 and the body carries the error.
func (s *Server) toolHandler(toolName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		args, err := decodeArgs(r.Body)
		if err != nil {
			log.Warnf(ctx, "invalid request body for %s: %v", toolName, err)
			ErrorJSON(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}

		log.Infof(ctx, "dispatching %s", toolName)
		result, err := s.registry.ExecuteTool(ctx, toolName, args)
		if err != nil {
			log.Errorf(ctx, "%s failed: %v", toolName, err)
			ErrorJSON(w, http.StatusOK, err.Error())
			return
		}

		JSON(w, http.StatusOK, result)
	}
}

func decodeArgs(body io.Reader) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	if body == nil {
		return args, nil
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}

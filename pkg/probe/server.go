package probe

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"syscall"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// listenAddr is fixed on purpose: the health endpoint is a sidecar
// contract, not a configurable surface.
const listenAddr = "0.0.0.0:8080"

type Handler struct {
	probe Probe
}

func NewHandler(p Probe) *Handler {
	return &Handler{probe: p}
}

// HandleHealth runs the probe synchronously for every request. No
// outcome is cached; each request spawns its own child process.
func (h *Handler) HandleHealth(res http.ResponseWriter, req *http.Request) {
	outcome := h.probe.Exec(req.Context())

	res.Header().Set("Content-Type", "text/plain; charset=utf-8")

	switch outcome.Status {
	case StatusHealthy:
		fmt.Fprint(res, "Healthy")
	case StatusUnhealthy:
		res.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(res, "Unhealthy")
	case StatusError:
		log.WithFields(log.Fields{"kind": "probe", "err": outcome.Fault}).Error("probe execution failed")
		res.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(res, "Error: "+outcome.Fault)
	}
}

func newRouter(h *Handler) *mux.Router {
	m := mux.NewRouter()
	m.Path("/health").Methods(http.MethodGet).HandlerFunc(h.HandleHealth)
	return m
}

// RunHealthServer binds the health endpoint and serves until a
// SIGINT or SIGTERM arrives on signals. A bind failure is returned to
// the caller; there is no retry or fallback port.
func RunHealthServer(h *Handler, signals chan os.Signal) error {
	server := http.Server{
		Addr:    listenAddr,
		Handler: newRouter(h),
	}

	go func() {
		for s := range signals {
			if s == syscall.SIGINT || s == syscall.SIGTERM {
				log.WithField("receivedSignal", s.String()).Info("shutting down health server")
				_ = server.Shutdown(context.Background())
			}
		}
	}()

	log.Infof("health server listens on %s", listenAddr)

	err := server.ListenAndServe()
	if err != http.ErrServerClosed {
		return err
	}

	return nil
}

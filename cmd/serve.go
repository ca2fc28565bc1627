package main

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/export"
	"github.com/sells-group/rentmap/internal/model"
	"github.com/sells-group/rentmap/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the latest heat map over HTTP",
	Long:  "Read-only API over the most recent persisted run: heat points as JSON or GeoJSON, plus a point rent estimate endpoint.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
		}))

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/v1/heatmap", handleHeatmap(st))
		r.Get("/v1/estimate", handleEstimate(st, cfg.Server.EstimateRadius))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func handleHeatmap(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		points, run, ok := latestPoints(w, req, st)
		if !ok {
			return
		}

		switch req.URL.Query().Get("format") {
		case "geojson":
			w.Header().Set("Content-Type", "application/geo+json")
			w.Header().Set("X-Run-ID", run.ID)
			if err := export.WriteGeoJSON(w, points); err != nil {
				zap.L().Error("heatmap geojson write failed", zap.Error(err))
			}
		case "json", "":
			w.Header().Set("X-Run-ID", run.ID)
			writeJSON(w, http.StatusOK, points)
		default:
			writeError(w, http.StatusBadRequest, "format must be json or geojson")
		}
	}
}

func handleEstimate(st store.Store, radius float64) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		lat, err1 := strconv.ParseFloat(req.URL.Query().Get("lat"), 64)
		lng, err2 := strconv.ParseFloat(req.URL.Query().Get("lng"), 64)
		if err1 != nil || err2 != nil {
			writeError(w, http.StatusBadRequest, "lat and lng query parameters are required")
			return
		}

		points, run, ok := latestPoints(w, req, st)
		if !ok {
			return
		}

		best := -1
		bestDist := radius
		for i, p := range points {
			d := math.Hypot(p.Lat-lat, p.Lng-lng)
			if d < bestDist {
				best = i
				bestDist = d
			}
		}
		if best < 0 {
			writeError(w, http.StatusNotFound, "no heat point within estimate radius")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"run_id":   run.ID,
			"rent":     points[best].Rent,
			"count":    points[best].Count,
			"lat":      points[best].Lat,
			"lng":      points[best].Lng,
			"distance": bestDist,
		})
	}
}

// latestPoints loads the most recent run's heat points, writing the HTTP
// error itself when there is nothing to serve.
func latestPoints(w http.ResponseWriter, req *http.Request, st store.Store) ([]model.HeatPoint, *model.Run, bool) {
	run, err := st.LatestRun(req.Context())
	if eris.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no runs persisted yet")
		return nil, nil, false
	}
	if err != nil {
		zap.L().Error("latest run lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "store error")
		return nil, nil, false
	}

	points, err := st.HeatPoints(req.Context(), run.ID)
	if err != nil {
		zap.L().Error("heat point load failed", zap.String("run_id", run.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "store error")
		return nil, nil, false
	}
	return points, run, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

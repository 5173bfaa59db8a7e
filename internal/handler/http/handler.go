package http

import (
	"github.com/MKhiriev/movie-api/internal/config"
	"github.com/MKhiriev/movie-api/internal/logger"
	"github.com/MKhiriev/movie-api/internal/metrics"
	"github.com/MKhiriev/movie-api/internal/service"
	"github.com/MKhiriev/movie-api/internal/utils"
)

type Handler struct {
	services *service.Services

	// metrics may be nil, in which case requests are not observed and
	// GET /metrics is not registered.
	metrics *metrics.Metrics

	traceIDs *utils.UUIDGenerator
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		traceIDs: utils.NewUUIDGenerator(),
		cfg:      cfg,
		logger:   logger,
	}
}

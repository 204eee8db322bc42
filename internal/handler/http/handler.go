package http

import (
	"github.com/MKhiriev/go-ats-gateway/internal/logger"
	"github.com/MKhiriev/go-ats-gateway/internal/session"
	"github.com/MKhiriev/go-ats-gateway/models"
)

type Handler struct {
	sessions  session.Accessor
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(sessions session.Accessor, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		sessions:  sessions,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

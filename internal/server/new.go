package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/pipeline"
)

type implServer struct {
	cfg      *config.Config
	logger   logger.Logger
	pipeline pipeline.Pipeline
	app      *fiber.App
}

func New(cfg *config.Config, l logger.Logger, p pipeline.Pipeline) Server {
	s := &implServer{
		cfg:      cfg,
		logger:   l,
		pipeline: p,
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
	}
	s.routes()
	return s
}

func (s *implServer) routes() {
	s.app.Get("/", s.handleIndex)
	s.app.Post("/transcribe", s.handleTranscribe)
}

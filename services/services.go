package services

import (
	"go-flatdb/config"
	"go-flatdb/pkg/engine"
	"go-flatdb/services/executor"
	"go-flatdb/services/parser"

	"github.com/sirupsen/logrus"
)

type Services struct {
	ParserService   parser.ParserService
	ExecutorService *executor.ExecutorService
}

func New(cfg *config.EngineConfig, log logrus.FieldLogger) (*Services, error) {
	e, err := engine.New(cfg, log)
	if err != nil {
		return nil, err
	}

	ps := parser.New()
	return &Services{
		ParserService:   ps,
		ExecutorService: executor.New(e, ps, log),
	}, nil
}

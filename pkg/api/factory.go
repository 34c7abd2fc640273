// Package api provides factory implementations for dependency injection
package api

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/bank"
)

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct {
	log zerolog.Logger
}

// NewServerFactory creates a new server factory
func NewServerFactory(log zerolog.Logger) ServerFactory {
	return &DefaultServerFactory{log: log}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{log: f.log}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct {
	log zerolog.Logger
}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, services Services, config ServerConfig) error {
	server := NewServer(services, config, NewMetrics(nil), s.log)
	return StartServer(ctx, server)
}

// DefaultBankFactory is the default implementation of BankFactory
type DefaultBankFactory struct{}

// NewBankFactory creates a new bank factory
func NewBankFactory() BankFactory {
	return &DefaultBankFactory{}
}

// OpenBank creates dataDir if needed and opens the bank in it
func (f *DefaultBankFactory) OpenBank(dataDir string) (RecordBankCloser, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create bank directory: %w", err)
	}
	b, err := bank.Open(dataDir)
	if err != nil {
		return nil, err
	}
	return b, nil
}

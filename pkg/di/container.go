// Package di provides dependency injection container
package di

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/davla/pkmn-3rd-gen-hex/pkg/api"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/catalog"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/config"
	"github.com/davla/pkmn-3rd-gen-hex/pkg/mail"
)

// Container holds all the dependencies for the application
type Container struct {
	config        *config.Config
	log           zerolog.Logger
	serverFactory api.ServerFactory
	bankFactory   api.BankFactory

	catalogs *catalog.Catalogs
	engine   *mail.Engine
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log zerolog.Logger) *Container {
	return &Container{
		config:        cfg,
		log:           log,
		serverFactory: api.NewServerFactory(log),
		bankFactory:   api.NewBankFactory(),
	}
}

// Config returns the loaded configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the application logger
func (c *Container) Logger() zerolog.Logger {
	return c.log
}

// Catalogs loads the catalogs on first use
func (c *Container) Catalogs() (*catalog.Catalogs, error) {
	if c.catalogs != nil {
		return c.catalogs, nil
	}
	cs, err := catalog.LoadCatalogs(c.config.CatalogPaths())
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	c.catalogs = cs
	return cs, nil
}

// Engine loads the mail dictionary on first use and returns an engine over
// it. The dictionary path comes from catalogs.words in the configuration.
func (c *Container) Engine() (*mail.Engine, error) {
	if c.engine != nil {
		return c.engine, nil
	}
	path := c.config.Catalogs.Words
	if path == "" {
		return nil, fmt.Errorf("no mail word dictionary configured: set catalogs.words or pass --words")
	}
	dict, err := catalog.LoadDictionary(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mail words: %w", err)
	}
	c.log.Debug().Str("path", path).Int("words", dict.Len()).Msg("loaded mail dictionary")
	c.engine = mail.NewEngine(dict)
	return c.engine, nil
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// GetBankFactory returns the bank factory
func (c *Container) GetBankFactory() api.BankFactory {
	return c.bankFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

// SetBankFactory allows overriding the bank factory (for testing)
func (c *Container) SetBankFactory(factory api.BankFactory) {
	c.bankFactory = factory
}

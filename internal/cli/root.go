// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the eagle command line tool: one subcommand per
// Eagle API endpoint plus offline library scanning and watching.
package cli

import (
	"fmt"

	eagle "github.com/MKhiriev/go-eagle"
	"github.com/MKhiriev/go-eagle/internal/config"
	"github.com/MKhiriev/go-eagle/internal/logger"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// ClientFactory builds the Eagle client once configuration is resolved.
type ClientFactory func(cfg *config.StructuredConfig, log *logger.Logger) (*eagle.Client, error)

// Option customises the command tree built by [NewRootCmd].
type Option func(*settings)

type settings struct {
	newClient ClientFactory
	copyText  func(string) error
}

// WithClientFactory replaces how commands obtain their Eagle client.
func WithClientFactory(f ClientFactory) Option {
	return func(s *settings) {
		s.newClient = f
	}
}

// WithClipboard replaces the system clipboard used by --copy.
func WithClipboard(copyText func(string) error) Option {
	return func(s *settings) {
		s.copyText = copyText
	}
}

func defaultClientFactory(cfg *config.StructuredConfig, log *logger.Logger) (*eagle.Client, error) {
	return eagle.NewFromConfig(cfg, log)
}

// session is what every subcommand needs after flags are parsed.
type session struct {
	cfg    *config.StructuredConfig
	log    *logger.Logger
	client *eagle.Client
	out    *printer

	copyText func(string) error
}

// NewRootCmd builds the eagle command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	s := &settings{
		newClient: defaultClientFactory,
		copyText:  clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(s)
	}

	sess := &session{copyText: s.copyText}

	cmd := &cobra.Command{
		Use:   "eagle",
		Short: "Command line client for the Eagle image manager",
		Long: `eagle talks to the local API of a running Eagle application and reads
Eagle libraries directly from disk.

Configuration is read from a JSON or TOML file (--config), the environment
(EAGLE_ADDRESS, EAGLE_REQUEST_TIMEOUT, LOG_LEVEL, LOG_FILE, OUTPUT, ...) and
flags, in increasing priority. A .env file in the working directory is loaded
first when present.`,
		SilenceUsage: true,
	}

	flags := config.BindFlags(cmd.PersistentFlags())

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.GetStructuredConfig(flags)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		log := logger.New("eagle-cli", logger.Config{
			Level:      cfg.Log.Level,
			FilePath:   cfg.Log.FilePath,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		})

		client, err := s.newClient(cfg, log)
		if err != nil {
			return err
		}

		sess.cfg = cfg
		sess.log = log
		sess.client = client
		sess.out = newPrinter(cmd.OutOrStdout(), cfg.Output)
		cmd.SetContext(log.WithContext(cmd.Context()))
		return nil
	}

	cmd.AddCommand(newAppCmd(sess))
	cmd.AddCommand(newFolderCmd(sess))
	cmd.AddCommand(newItemCmd(sess))
	cmd.AddCommand(newLibraryCmd(sess))
	cmd.AddCommand(newScanCmd(sess))
	cmd.AddCommand(newWatchCmd(sess))

	return cmd
}

// actionResult is printed by commands whose endpoint returns no data.
type actionResult struct {
	Action string `json:"action" yaml:"action"`
	Status string `json:"status" yaml:"status"`
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
}

func done(action, id string) actionResult {
	return actionResult{Action: action, Status: "success", ID: id}
}

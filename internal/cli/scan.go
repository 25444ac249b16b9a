package cli

import (
	"github.com/MKhiriev/go-eagle/internal/library"
	"github.com/MKhiriev/go-eagle/internal/logger"
	"github.com/MKhiriev/go-eagle/models"
	"github.com/spf13/cobra"
)

func newScanCmd(sess *session) *cobra.Command {
	var opts library.ScanOptions

	cmd := &cobra.Command{
		Use:   "scan PATH",
		Short: "Read item metadata straight from a library folder",
		Long: `Read metadata.json from every item folder of an Eagle library without
going through the Eagle API. PATH is either a *.library folder or the
folder holding the per-item folders.`,
		Example: `  eagle scan ~/Pictures/Refs.library --prefix IMG_ --max 100
  eagle scan ~/Pictures/Refs.library/images --workers 8 -o table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				opts.Workers = sess.cfg.Scanner.Workers
			}

			items, err := sess.client.ScanLibrary(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return sess.out.print(items)
		},
	}

	cmd.Flags().StringArrayVar(&opts.NameStartFilters, "prefix", nil, "Keep items whose name starts with this prefix (repeatable)")
	cmd.Flags().IntVar(&opts.MaxCount, "max", 0, "Stop after this many items; 0 means no limit")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Metadata files parsed in parallel")
	return cmd
}

func newWatchCmd(sess *session) *cobra.Command {
	var opts library.ScanOptions

	cmd := &cobra.Command{
		Use:   "watch PATH",
		Short: "Print item metadata as Eagle writes it to a library folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.FromContext(cmd.Context()).Info().
				Str("path", args[0]).
				Strs("prefixes", opts.NameStartFilters).
				Msg("watching library, interrupt to stop")

			var printErr error
			err := sess.client.WatchLibrary(cmd.Context(), args[0], opts, func(item models.Item) {
				if err := sess.out.print(item); err != nil && printErr == nil {
					printErr = err
				}
			})
			if err != nil {
				return err
			}
			return printErr
		},
	}

	cmd.Flags().StringArrayVar(&opts.NameStartFilters, "prefix", nil, "Only report items whose name starts with this prefix (repeatable)")
	cmd.Flags().IntVar(&opts.MaxCount, "max", 0, "Exit after this many items; 0 runs until interrupted")
	return cmd
}

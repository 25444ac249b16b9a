package cli

import (
	"github.com/MKhiriev/go-eagle/models"
	"github.com/spf13/cobra"
)

func newAppCmd(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Inspect the running Eagle application",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show Eagle version and platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := sess.client.ApplicationInfo(cmd.Context())
			if err != nil {
				return err
			}
			return sess.out.print(info)
		},
	})

	return cmd
}

func newLibraryCmd(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect and switch Eagle libraries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Describe the library open in Eagle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := sess.client.LibraryInfo(cmd.Context())
			if err != nil {
				return err
			}
			return sess.out.print(info)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List recently opened libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := sess.client.LibraryHistory(cmd.Context())
			if err != nil {
				return err
			}
			return sess.out.print(history)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "switch PATH",
		Short: "Make Eagle open another library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := sess.client.SwitchLibrary(cmd.Context(), models.SwitchLibraryRequest{LibraryPath: args[0]})
			if err != nil {
				return err
			}
			return sess.out.print(done("library switch", ""))
		},
	})

	return cmd
}

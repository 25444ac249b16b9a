package cli

import (
	"github.com/MKhiriev/go-eagle/models"
	"github.com/spf13/cobra"
)

func newFolderCmd(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Create, rename and list folders",
	}

	cmd.AddCommand(newFolderCreateCmd(sess))
	cmd.AddCommand(newFolderRenameCmd(sess))
	cmd.AddCommand(newFolderUpdateCmd(sess))

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the folder tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			folders, err := sess.client.ListFolders(cmd.Context())
			if err != nil {
				return err
			}
			return sess.out.print(folders)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "recent",
		Short: "Show recently used folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			folders, err := sess.client.ListRecentFolders(cmd.Context())
			if err != nil {
				return err
			}
			return sess.out.print(folders)
		},
	})

	return cmd
}

func newFolderCreateCmd(sess *session) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a folder",
		Example: `  eagle folder create References
  eagle folder create Sketches --parent KBCB8BK86WIW1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := sess.client.CreateFolder(cmd.Context(), models.CreateFolderRequest{
				FolderName: args[0],
				Parent:     parent,
			})
			if err != nil {
				return err
			}
			return sess.out.print(folder)
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent folder id")
	return cmd
}

func newFolderRenameCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := sess.client.RenameFolder(cmd.Context(), models.RenameFolderRequest{
				FolderID: args[0],
				NewName:  args[1],
			})
			if err != nil {
				return err
			}
			return sess.out.print(folder)
		},
	}
}

func newFolderUpdateCmd(sess *session) *cobra.Command {
	var (
		name        string
		description string
		color       string
	)

	cmd := &cobra.Command{
		Use:     "update ID",
		Short:   "Change a folder's name, description or color",
		Example: `  eagle folder update KBCB8BK86WIW1 --color blue --description "mood board"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := sess.client.UpdateFolder(cmd.Context(), models.UpdateFolderRequest{
				FolderID:       args[0],
				NewName:        name,
				NewDescription: description,
				NewColor:       models.FolderColor(color),
			})
			if err != nil {
				return err
			}
			return sess.out.print(folder)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New folder name")
	cmd.Flags().StringVar(&description, "description", "", "New folder description")
	cmd.Flags().StringVar(&color, "color", "", "New color: red, orange, green, yellow, aqua, blue, purple or pink")
	return cmd
}

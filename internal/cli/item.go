package cli

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-eagle/models"
	"github.com/spf13/cobra"
)

func newItemCmd(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Import, inspect and edit items",
	}

	cmd.AddCommand(newItemAddURLCmd(sess))
	cmd.AddCommand(newItemAddPathCmd(sess))
	cmd.AddCommand(newItemAddBookmarkCmd(sess))
	cmd.AddCommand(newItemInfoCmd(sess))
	cmd.AddCommand(newItemThumbnailCmd(sess))
	cmd.AddCommand(newItemListCmd(sess))
	cmd.AddCommand(newItemTrashCmd(sess))
	cmd.AddCommand(newItemRefreshCmd(sess, "refresh-palette", "Recompute an item's color palette"))
	cmd.AddCommand(newItemRefreshCmd(sess, "refresh-thumbnail", "Regenerate an item's thumbnail"))
	cmd.AddCommand(newItemUpdateCmd(sess))
	cmd.AddCommand(newItemTagCmd(sess))

	return cmd
}

func newItemAddURLCmd(sess *session) *cobra.Command {
	var (
		name       string
		website    string
		annotation string
		folderID   string
		tags       []string
		headers    map[string]string
	)

	cmd := &cobra.Command{
		Use:   "add-url URL...",
		Short: "Download and import images from the web",
		Example: `  eagle item add-url https://example.com/cat.png --tag cats --folder KBCB8BK86WIW1
  eagle item add-url https://a.io/1.jpg https://a.io/2.jpg --header referer=https://a.io`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]models.URLItem, 0, len(args))
			for _, raw := range args {
				itemName := name
				if itemName == "" || len(args) > 1 {
					itemName = nameFromURL(raw)
				}
				items = append(items, models.URLItem{
					URL:        raw,
					Name:       itemName,
					Website:    website,
					Tags:       tags,
					Annotation: annotation,
					Headers:    headers,
				})
			}

			if len(items) == 1 {
				id, err := sess.client.AddFromURL(cmd.Context(), models.AddFromURLRequest{URLItem: items[0], FolderID: folderID})
				if err != nil {
					return err
				}
				return sess.out.print(done("item add-url", id))
			}

			err := sess.client.AddFromURLs(cmd.Context(), models.AddFromURLsRequest{Items: items, FolderID: folderID})
			if err != nil {
				return err
			}
			return sess.out.print(done("item add-url", ""))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name (single URL only; defaults to the file name in the URL)")
	cmd.Flags().StringVar(&website, "website", "", "Source page of the image")
	cmd.Flags().StringVar(&annotation, "annotation", "", "Item annotation")
	cmd.Flags().StringVar(&folderID, "folder", "", "Target folder id")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag to add (repeatable)")
	cmd.Flags().StringToStringVar(&headers, "header", nil, "HTTP header Eagle sends when downloading, key=value (repeatable)")
	return cmd
}

func newItemAddPathCmd(sess *session) *cobra.Command {
	var (
		name       string
		website    string
		annotation string
		folderID   string
		tags       []string
	)

	cmd := &cobra.Command{
		Use:   "add-path PATH...",
		Short: "Import local files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]models.PathItem, 0, len(args))
			for _, p := range args {
				abs, err := filepath.Abs(p)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", p, err)
				}
				itemName := name
				if itemName == "" || len(args) > 1 {
					itemName = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
				}
				items = append(items, models.PathItem{
					Path:       abs,
					Name:       itemName,
					Website:    website,
					Annotation: annotation,
					Tags:       tags,
				})
			}

			if len(items) == 1 {
				id, err := sess.client.AddFromPath(cmd.Context(), models.AddFromPathRequest{PathItem: items[0], FolderID: folderID})
				if err != nil {
					return err
				}
				return sess.out.print(done("item add-path", id))
			}

			err := sess.client.AddFromPaths(cmd.Context(), models.AddFromPathsRequest{Items: items, FolderID: folderID})
			if err != nil {
				return err
			}
			return sess.out.print(done("item add-path", ""))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name (single file only; defaults to the file name)")
	cmd.Flags().StringVar(&website, "website", "", "Source page of the file")
	cmd.Flags().StringVar(&annotation, "annotation", "", "Item annotation")
	cmd.Flags().StringVar(&folderID, "folder", "", "Target folder id")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag to add (repeatable)")
	return cmd
}

func newItemAddBookmarkCmd(sess *session) *cobra.Command {
	var (
		name      string
		thumbnail string
		folderID  string
		tags      []string
	)

	cmd := &cobra.Command{
		Use:   "add-bookmark URL",
		Short: "Save a web page as a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = args[0]
			}
			id, err := sess.client.AddBookmark(cmd.Context(), models.AddBookmarkRequest{
				URL:      args[0],
				Name:     name,
				Base64:   thumbnail,
				Tags:     tags,
				FolderID: folderID,
			})
			if err != nil {
				return err
			}
			return sess.out.print(done("item add-bookmark", id))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Bookmark name (defaults to the URL)")
	cmd.Flags().StringVar(&thumbnail, "base64", "", "Thumbnail as a base64 data URL")
	cmd.Flags().StringVar(&folderID, "folder", "", "Target folder id")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag to add (repeatable)")
	return cmd
}

func newItemInfoCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info ID",
		Short: "Show an item's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := sess.client.ItemInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return sess.out.print(item)
		},
	}
}

func newItemThumbnailCmd(sess *session) *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:   "thumbnail ID",
		Short: "Print the path of an item's thumbnail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			thumbnail, err := sess.client.ItemThumbnail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if copyPath {
				if err = sess.copyText(thumbnail); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			return sess.out.print(thumbnail)
		},
	}

	cmd.Flags().BoolVar(&copyPath, "copy", false, "Also copy the path to the clipboard")
	return cmd
}

func newItemListCmd(sess *session) *cobra.Command {
	var (
		query    models.ItemListQuery
		prefixes []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Example: `  eagle item list --limit 50 --order-by -CREATEDATE
  eagle item list --tag cats --ext png -o table
  eagle item list --prefix IMG_`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := sess.client.ListItems(cmd.Context(), query)
			if err != nil {
				return err
			}

			kept := make([]models.Item, 0, len(items))
			for _, item := range items {
				if item.HasNamePrefix(prefixes...) {
					kept = append(kept, item)
				}
			}
			return sess.out.print(kept)
		},
	}

	cmd.Flags().IntVar(&query.Limit, "limit", 200, "Maximum number of items")
	cmd.Flags().IntVar(&query.Offset, "offset", 0, "Page offset")
	cmd.Flags().StringVar(&query.OrderBy, "order-by", "", "Sort field, e.g. CREATEDATE, FILESIZE, NAME, RESOLUTION; prefix - for descending")
	cmd.Flags().StringVar(&query.Keyword, "keyword", "", "Keyword filter")
	cmd.Flags().StringVar(&query.Ext, "ext", "", "File extension filter")
	cmd.Flags().StringSliceVar(&query.Tags, "tag", nil, "Tag filter (repeatable)")
	cmd.Flags().StringSliceVar(&query.Folders, "folder", nil, "Folder id filter (repeatable)")
	cmd.Flags().StringArrayVar(&prefixes, "prefix", nil, "Keep items whose name starts with this prefix (repeatable)")
	return cmd
}

func newItemTrashCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "trash ID...",
		Short: "Move items to the trash",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.client.MoveToTrash(cmd.Context(), models.MoveToTrashRequest{ItemIDs: args}); err != nil {
				return err
			}
			return sess.out.print(done("item trash", strings.Join(args, ",")))
		},
	}
}

func newItemRefreshCmd(sess *session, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if use == "refresh-palette" {
				err = sess.client.RefreshPalette(cmd.Context(), args[0])
			} else {
				err = sess.client.RefreshThumbnail(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return sess.out.print(done("item "+use, args[0]))
		},
	}
}

func newItemUpdateCmd(sess *session) *cobra.Command {
	var (
		tags       []string
		clearTags  bool
		annotation string
		sourceURL  string
		star       int
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change an item's tags, annotation, source url or rating",
		Example: `  eagle item update KBHG6KA0Y5S9W --star 5 --annotation "final pick"
  eagle item update KBHG6KA0Y5S9W --clear-tags`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.UpdateItemRequest{ID: args[0]}

			flags := cmd.Flags()
			switch {
			case clearTags:
				req.Tags = models.Ptr([]string{})
			case flags.Changed("tag"):
				req.Tags = &tags
			}
			if flags.Changed("annotation") {
				req.Annotation = &annotation
			}
			if flags.Changed("url") {
				req.URL = &sourceURL
			}
			if flags.Changed("star") {
				req.Star = &star
			}

			item, err := sess.client.UpdateItem(cmd.Context(), req)
			if err != nil {
				return err
			}
			return sess.out.print(item)
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace tags (repeatable)")
	cmd.Flags().BoolVar(&clearTags, "clear-tags", false, "Remove all tags")
	cmd.Flags().StringVar(&annotation, "annotation", "", "New annotation")
	cmd.Flags().StringVar(&sourceURL, "url", "", "New source url")
	cmd.Flags().IntVar(&star, "star", 0, "Rating from 0 to 5")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")
	return cmd
}

func newItemTagCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tag ID [TAG...]",
		Short: "Replace an item's tags; no tags clears them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := sess.client.SetTags(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			return sess.out.print(item)
		},
	}
}

// nameFromURL returns the last path element of raw without its extension,
// or raw itself when it has none.
func nameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" || u.Path == "/" {
		return raw
	}
	base := path.Base(u.Path)
	if name := strings.TrimSuffix(base, path.Ext(base)); name != "" {
		return name
	}
	return base
}

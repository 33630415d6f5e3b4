package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"gitea.knapp/jacoknapp/launcher/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or build the song manifest",
	}
	cmd.AddCommand(newCatalogScanCmd(afero.NewOsFs()), newCatalogShowCmd())
	return cmd
}

func newCatalogScanCmd(fs afero.Fs) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Build a manifest from the tagged .mp3 files in DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Scan(fs, args[0])
			if err != nil {
				return err
			}
			if out == "" {
				return c.Write(cmd.OutOrStdout())
			}
			f, err := fs.Create(out)
			if err != nil {
				return err
			}
			if err := c.Write(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the manifest here instead of stdout")
	return cmd
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the bundled manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Default()
			if err != nil {
				return err
			}
			return c.Write(cmd.OutOrStdout())
		},
	}
}

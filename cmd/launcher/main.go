package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitea.knapp/jacoknapp/launcher/internal/bootstrap"
	"gitea.knapp/jacoknapp/launcher/internal/httpapi"
	"gitea.knapp/jacoknapp/launcher/internal/settings"
	"gitea.knapp/jacoknapp/launcher/internal/util"
	"gitea.knapp/jacoknapp/launcher/internal/version"
)

func main() {
	if err := newRootCmd(os.Exit).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. exit is what a settings reset calls.
func newRootCmd(exit func(int)) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("LAUNCHER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "launcher",
		Short:        "Settings host for the launcher web UI",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", defaultConfigPath(), "host config file")
	root.PersistentFlags().String("data-dir", "", "private data directory holding "+settings.FileName)
	_ = v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("data_dir", root.PersistentFlags().Lookup("data-dir"))

	open := func(cmd *cobra.Command) (*bootstrap.App, error) {
		return bootstrap.EnsureFirstRun(v.GetString("config"), v.GetString("data_dir"), bootstrap.Options{
			LogOut: cmd.ErrOrStderr(),
			Exit:   exit,
		})
	}

	root.AddCommand(
		newServeCmd(v, open),
		newGetCmd(open),
		newSetCmd(open),
		newResetCmd(open),
		newCatalogCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.BuildVersion)
			},
		},
	)
	return root
}

type opener func(cmd *cobra.Command) (*bootstrap.App, error)

func newServeCmd(v *viper.Viper, open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the settings bridge to the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd)
			if err != nil {
				return err
			}
			listen := util.FirstNonEmpty(v.GetString("listen"), app.Config.HTTP.Listen)

			srv := httpapi.NewServer(app.Settings, app.Events, app.Log.WithField("component", "http"))
			server := &http.Server{Addr: listen, Handler: srv.Router()}

			errc := make(chan error, 1)
			go func() {
				app.Log.Infof("listening on %s", listen)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errc <- err
				}
			}()

			stopCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			select {
			case <-stopCtx.Done():
			case err := <-errc:
				return err
			}
			return server.Shutdown(context.Background())
		},
	}
	cmd.Flags().String("listen", "", "listen address, overrides http.listen")
	_ = v.BindPFlag("listen", cmd.Flags().Lookup("listen"))
	return cmd
}

func newGetCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Settings.Get(args[0]))
			return nil
		},
	}
}

func newSetCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd)
			if err != nil {
				return err
			}
			app.Settings.Set(args[0], args[1])
			return nil
		},
	}
}

func newResetCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Erase all settings and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cmd)
			if err != nil {
				return err
			}
			return app.Settings.ResetAndExit()
		},
	}
}

func defaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".launcher", "launcher.yaml")
	}
	return filepath.Join(home, ".launcher", "launcher.yaml")
}

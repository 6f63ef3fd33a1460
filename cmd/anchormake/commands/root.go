package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"anchormake/internal/anker"
	"anchormake/internal/app"
)

var (
	home       string
	passphrase string
	appCtx     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "anchormake",
		Short:        "AnkerMake cloud account CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".anchormake")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			viper.SetConfigName("anchormake")
			viper.SetConfigType("yaml")
			viper.AddConfigPath(home)
			viper.SetEnvPrefix("ANCHORMAKE")
			viper.AutomaticEnv()
			if err := viper.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return err
				}
			}
			// Flags win over environment and config file.
			for _, key := range []string{"email", "region", "base-url"} {
				if f := cmd.Flags().Lookup(key); f != nil {
					if err := viper.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}

			appCtx = app.NewWire(app.Config{
				Home:    home,
				BaseURL: viper.GetString("base-url"),
				Email:   viper.GetString("email"),
				Region:  viper.GetString("region"),
				Log:     logger.Sugar(),
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.anchormake)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored session")
	root.PersistentFlags().String("email", "", "account email")
	root.PersistentFlags().String("region", "us", "account region code (sent as \"ab\")")
	root.PersistentFlags().String("base-url", "", "override the account service URL")

	root.AddCommand(loginCmd(), devicesCmd(), statusCmd(), logoutCmd())
	return root.Execute()
}

// restoredClient rebuilds a client from the stored login blob.
func restoredClient() (*anker.Client, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase required (-p)")
	}
	data, ok, err := appCtx.Store.LoadLogin(passphrase)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no stored session. run login first")
	}
	return appCtx.RestoreClient(data), nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Store.ClearLogin(); err != nil {
				return err
			}
			fmt.Println("Session cleared.")
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// statusCmd shows the stored session. The service never invalidates a
// session client-side; this is where the expiry check the library leaves to
// callers actually happens.
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session and its expiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := restoredClient()
			if err != nil {
				return err
			}
			sess := client.Session()
			fmt.Printf("User:    %s (%s)\n", sess.NickName, sess.UserID)

			exp := time.Unix(sess.TokenExpiresAt, 0)
			if sess.Expired(time.Now().Unix()) {
				fmt.Printf("Expired: %s. Run login again.\n", exp.Format(time.RFC1123))
				return nil
			}
			fmt.Printf("Expires: %s\n", exp.Format(time.RFC1123))
			return nil
		},
	}
}

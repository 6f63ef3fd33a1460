package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"anchormake/internal/domain"
)

// loginCmd authenticates against the cloud service and persists the login
// blob so later commands can skip the handshake.
func loginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Cfg.Email == "" {
				return fmt.Errorf("email required (--email or config file)")
			}
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if password == "" {
				var err error
				password, err = promptSecret("Account password: ")
				if err != nil {
					return err
				}
			}

			client := appCtx.NewClient(password)
			res := client.Login(cmd.Context(), "", "")

			// One captcha round: the challenge id arrives in the failed
			// result's data and the answer goes out with the retry.
			if res.Code != nil && *res.Code == domain.CaptchaRequired {
				var challenge struct {
					CaptchaID string `json:"captcha_id"`
				}
				_ = json.Unmarshal(res.Data, &challenge)
				if challenge.CaptchaID == "" {
					var err error
					challenge.CaptchaID, err = promptLine("Captcha id: ")
					if err != nil {
						return err
					}
				}
				answer, err := promptLine("Captcha answer: ")
				if err != nil {
					return err
				}
				res = client.Login(cmd.Context(), challenge.CaptchaID, answer)
			}

			if res.Code == nil {
				return fmt.Errorf("login failed: no usable response from server")
			}
			if !res.Success {
				return fmt.Errorf("login rejected: %s (%s)", res.Msg, res.Code)
			}

			var data domain.LoginData
			if err := json.Unmarshal(res.Data, &data); err != nil {
				return fmt.Errorf("parsing login data: %w", err)
			}
			if err := appCtx.Store.SaveLogin(passphrase, data); err != nil {
				return err
			}

			sess := client.Session()
			fmt.Printf("Logged in as %s (user %s). Token expires %s.\n",
				sess.NickName, sess.UserID,
				time.Unix(sess.TokenExpiresAt, 0).Format(time.RFC1123))
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted if empty)")
	return cmd
}

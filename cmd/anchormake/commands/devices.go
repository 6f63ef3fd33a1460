package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// devicesCmd lists the account's printers using the stored session.
func devicesCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List the printers registered to the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := restoredClient()
			if err != nil {
				return err
			}

			res := client.DeviceList(cmd.Context())
			if res.Code == nil {
				return fmt.Errorf("device list failed: no usable response from server")
			}
			if !res.Success {
				return fmt.Errorf("device list rejected: %s (%s)", res.Msg, res.Code)
			}
			if raw {
				fmt.Println(string(res.Data))
				return nil
			}
			printDevices(res.Data)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw response data")
	return cmd
}

// printDevices best-effort renders the opaque device records; the schema is
// the server's to define, so anything unrecognized falls back to raw JSON.
func printDevices(data json.RawMessage) {
	var devices []map[string]any
	if err := json.Unmarshal(data, &devices); err != nil || len(devices) == 0 {
		fmt.Println(string(data))
		return
	}
	for _, d := range devices {
		sn, _ := d["device_sn"].(string)
		name, _ := d["name"].(string)
		fmt.Printf("%s\t%s\n", sn, name)
	}
}

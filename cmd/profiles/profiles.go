// Package profiles handles the profile listing and export command
package profiles

import (
	"context"

	"github.com/fayland/go-authorizenet-cim/cmd/common"
	"github.com/fayland/go-authorizenet-cim/cmd/root"
	"github.com/fayland/go-authorizenet-cim/internal/export"
	"github.com/fayland/go-authorizenet-cim/pkg/cim"

	"github.com/spf13/cobra"
)

// Cmd represents the profiles command
var Cmd = &cobra.Command{
	Use:   "profiles",
	Short: "List all customer profile IDs",
	Long: `List every customer profile ID known to the gateway. With --output,
the IDs are also written to a CSV file.`,
	Run: profilesFunc,
}

func profilesFunc(cmd *cobra.Command, args []string) {
	common.Call("getCustomerProfileIds", func(ctx context.Context, client *cim.Client) (*cim.Response, error) {
		resp, err := client.GetCustomerProfileIDs(ctx)
		if err != nil {
			return nil, err
		}

		if root.SharedFlags.Output != "" && resp.Ok() {
			records := export.IDsToRecords(resp.IDs)
			if err := export.WriteProfilesToCSV(records, root.SharedFlags.Output); err != nil {
				root.Log.Fatalf("Failed to export profile IDs: %v", err)
			}
			root.Log.Infof("Wrote %d profile IDs to %s", len(records), root.SharedFlags.Output)
		}
		return resp, nil
	})
}

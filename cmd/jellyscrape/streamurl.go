package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streamURLCmd = &cobra.Command{
	Use:   "stream-url <item-id>",
	Short: "Print the direct stream URL of an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runStreamURLCmd,
}

func init() {
	rootCmd.AddCommand(streamURLCmd)
}

func runStreamURLCmd(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	// The URL carries the access token, so log in first.
	if err := a.client.Authenticate(cmd.Context()); err != nil {
		return err
	}
	u := a.client.StreamURL(args[0])

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]string{"item_id": args[0], "url": u})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
	return err
}

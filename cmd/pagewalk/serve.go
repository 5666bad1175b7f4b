package main

import (
	"github.com/spf13/cobra"

	"github.com/sarchlab/pagewalk/monitoring"
)

var serveCmd = &cobra.Command{
	Use:   "serve <tracefile>",
	Short: "Replay a trace, then serve the table for inspection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table, root, _ := replayTrace(cmd, args[0])

		port, err := cmd.Flags().GetInt("port")
		dieOnErr(err)

		dashboard, err := cmd.Flags().GetBool("dashboard")
		dieOnErr(err)

		monitor := monitoring.NewMonitor()
		if port != 0 {
			monitor = monitor.WithPortNumber(port)
		}

		monitor.RegisterPageTable("PageTable0", table, root)
		monitor.StartServer()

		if dashboard {
			monitor.StartDashboard()
		}

		select {}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addReplayFlags(serveCmd)

	serveCmd.Flags().Int("port", 0, "port for the monitoring server")
	serveCmd.Flags().Bool("dashboard", false,
		"open the monitor in the default browser")
}

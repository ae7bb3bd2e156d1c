package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adaptifocus/adaptifocus/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		bind, _ := cmd.Flags().GetString("bind")
		port, _ := cmd.Flags().GetInt("port")

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer svc.Close()

		srv := web.NewServer(svc, version, bind, port)
		return web.Run(srv)
	},
}

func init() {
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind the API server to")
	serveCmd.Flags().Int("port", 8710, "Port to listen on")
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"punchcard/internal/interfaces/cli/admin"
	"punchcard/internal/interfaces/cli/migrate"
	"punchcard/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "punchcard",
		Short: "Punchcard - QR code attendance tracking",
		Long:  `Punchcard is a QR-code based employee attendance service with built-in server, migration tools, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

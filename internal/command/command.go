package command

import (
	commandHandler "ecotutor/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewReportHandler)

type Command struct {
	reportCommandHandler *commandHandler.ReportHandler
}

// NewCommand .
func NewCommand(
	reportCommandHandler *commandHandler.ReportHandler,
) *Command {
	return &Command{
		reportCommandHandler: reportCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "print the usage and carbon report for a day",
		Run: func(cmd *cobra.Command, args []string) {
			command, cleanup, err := newCmd()
			if err != nil {
				panic(err)
			}
			defer cleanup()

			command.reportCommandHandler.Report(cmd, args)
		},
	}
	reportCmd.Flags().String("date", "", "day to report, YYYY-MM-DD (defaults to today, UTC)")
	rootCmd.AddCommand(reportCmd)
}

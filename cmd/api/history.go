package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aryavats2/interview-coach/internal/config"
	"aryavats2/interview-coach/internal/repositories"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print stored chat turns, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// SQL statement logging would interleave with the printed history.
			cfg.Server.Env = "cli"

			dbs, err := config.InitDatabases(cfg)
			if err != nil {
				return err
			}
			defer dbs.Close()

			turns, err := repositories.NewChatRepository(dbs.Chat).ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, turn := range turns {
				fmt.Fprintf(out, "#%d\n  user: %s\n  bot:  %s\n", turn.ID, turn.UserMessage, turn.BotReply)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of turns to print (0 for all)")

	return cmd
}

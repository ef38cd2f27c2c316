package main

import (
	"fmt"

	"github.com/mmuslimabdulj/modex/internal/fixture"
	"github.com/mmuslimabdulj/modex/internal/panel"
	"github.com/spf13/cobra"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Validate the roster and message fixtures and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := fixture.Load(cfg.FixturesPath)
		if err != nil {
			return err
		}
		roster, err := sources.Roster.Roster(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "roster: %d entries, %d online\n", len(roster), panel.OnlineCount(roster))
		for _, e := range roster {
			activity := "-"
			if e.HasActivity() {
				activity = e.Activity
			}
			fmt.Fprintf(out, "  %-4s %-20s %-8s %s\n", e.ID, e.DisplayName, e.Presence, activity)
		}
		if len(roster) > 0 {
			messages, err := sources.Conversation.Conversation(cmd.Context(), roster[0].ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "messages: %d\n", len(messages))
		}
		return nil
	},
}

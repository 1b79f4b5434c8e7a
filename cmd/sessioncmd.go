package cmd

import (
	"fmt"

	"github.com/fieldsense/fieldsense/internal/output"
	"github.com/fieldsense/fieldsense/internal/session"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or clear multi-step session state",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the sessions recorded in a state file",
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop a session from a state file when its flow concludes",
	RunE:  runSessionClear,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)

	sessionShowCmd.Flags().String("state", "", "YAML session-state file")
	sessionShowCmd.Flags().String("session", "", "Show only this session id")
	_ = sessionShowCmd.MarkFlagRequired("state")

	sessionClearCmd.Flags().String("state", "", "YAML session-state file")
	sessionClearCmd.Flags().String("session", "", "Session id to clear")
	_ = sessionClearCmd.MarkFlagRequired("state")
	_ = sessionClearCmd.MarkFlagRequired("session")
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	statePath, _ := cmd.Flags().GetString("state")
	sessionID, _ := cmd.Flags().GetString("session")

	store := session.NewStore()
	if err := loadState(store, statePath); err != nil {
		return err
	}

	sessions := store.Export()
	if sessionID != "" {
		record, ok := sessions[sessionID]
		if !ok {
			return fmt.Errorf("no state for session %s", sessionID)
		}
		return output.Print(map[string]session.Record{sessionID: record})
	}
	return output.Print(sessions)
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	statePath, _ := cmd.Flags().GetString("state")
	sessionID, _ := cmd.Flags().GetString("session")

	store := session.NewStore()
	if err := loadState(store, statePath); err != nil {
		return err
	}
	store.Clear(sessionID)
	return saveState(store, statePath)
}

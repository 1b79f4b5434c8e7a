package cmd

import (
	"fmt"

	"github.com/fieldsense/fieldsense/internal/browser"
	"github.com/fieldsense/fieldsense/internal/model"
	"github.com/fieldsense/fieldsense/internal/output"
	"github.com/fieldsense/fieldsense/internal/policy"
	"github.com/fieldsense/fieldsense/internal/session"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var decideCmd = &cobra.Command{
	Use:   "decide <snapshot>",
	Short: "Decide what credential-save prompt a submitted snapshot should request",
	Long: `Cluster a snapshot, select the active cluster, and run the save-session
policy against it. Multi-step flows (username on one screen, password on the
next) are stitched together through a session id and a state file: pass the
same --session and --state on each step and the prior username is carried
into the final save-password directive.

Examples:
  fieldsense decide screen.yaml --package com.example.app
  fieldsense decide step1.yaml --state flow.yaml
  fieldsense decide step2.yaml --state flow.yaml --session 7f9c...`,
	Args: cobra.ExactArgs(1),
	RunE: runDecide,
}

func init() {
	rootCmd.AddCommand(decideCmd)
	decideCmd.Flags().String("session", "", "Session id (generated when omitted)")
	decideCmd.Flags().String("state", "", "YAML session-state file, loaded before and written after")
	decideCmd.Flags().String("package", "", "Host application package (checked against the browser list)")
	decideCmd.Flags().Bool("browser", false, "Treat the host as a browser regardless of package")
	decideCmd.Flags().String("browser-list", "", "YAML file with extra browser packages")
}

func runDecide(cmd *cobra.Command, args []string) error {
	sessionID, _ := cmd.Flags().GetString("session")
	statePath, _ := cmd.Flags().GetString("state")
	pkg, _ := cmd.Flags().GetString("package")
	browserFlag, _ := cmd.Flags().GetBool("browser")
	browserList, _ := cmd.Flags().GetString("browser-list")

	snap, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	browsers := browser.Default()
	if browserList != "" {
		if err := browsers.Load(browserList); err != nil {
			return err
		}
	}
	if pkg == "" {
		pkg = snap.Package
	}
	isBrowser := browserFlag || (pkg != "" && browsers.IsBrowser(pkg))

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	store := session.NewStore()
	if statePath != "" {
		if err := loadState(store, statePath); err != nil {
			return err
		}
	}

	clusters := model.ClusterFields(snap.Fields)
	selected := model.SelectCluster(clusters)
	directive := policy.Decide(store, sessionID, selected, isBrowser)

	if statePath != "" {
		if err := saveState(store, statePath); err != nil {
			return fmt.Errorf("persist state: %w", err)
		}
	}

	return output.Print(output.DecideResult{
		SessionID: sessionID,
		Browser:   isBrowser,
		Selected:  output.NewClusterView(selected),
		Directive: output.NewDirectiveView(directive),
	})
}

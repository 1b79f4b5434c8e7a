package cmd

import (
	"github.com/fieldsense/fieldsense/internal/model"
	"github.com/fieldsense/fieldsense/internal/output"
	"github.com/spf13/cobra"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster <snapshot>",
	Short: "Group a snapshot's fields into login/sign-up/credit-card clusters",
	Long: `Parse a captured field snapshot (YAML or JSON, "-" for stdin), group its
fields into typed clusters, and report the cluster the user is interacting
with (the first focused one, else the first).

Examples:
  fieldsense cluster screen.yaml
  fieldsense cluster - < screen.json
  fieldsense cluster screen.yaml --selected-only --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runCluster,
}

func init() {
	rootCmd.AddCommand(clusterCmd)
	clusterCmd.Flags().Bool("selected-only", false, "Print only the selected cluster")
}

func runCluster(cmd *cobra.Command, args []string) error {
	selectedOnly, _ := cmd.Flags().GetBool("selected-only")

	snap, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	clusters := model.ClusterFields(snap.Fields)
	selected := model.SelectCluster(clusters)

	if selectedOnly {
		return output.Print(output.NewClusterView(selected))
	}

	result := output.ClusterResult{
		App:      snap.App,
		TS:       snap.TS,
		Selected: output.NewClusterView(selected),
	}
	for _, c := range clusters {
		result.Clusters = append(result.Clusters, output.NewClusterView(c))
	}
	return output.Print(result)
}

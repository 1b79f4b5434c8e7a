package model

// SelectCluster picks the cluster the user is interacting with: the first
// focused cluster, otherwise the first in list order. This favors whatever
// the user is actually typing into when several forms coexist on one screen.
// Returns Empty when there are no clusters.
func SelectCluster(clusters []Cluster) Cluster {
	if len(clusters) == 0 {
		return Empty{}
	}
	for _, c := range clusters {
		if c.IsFocused() {
			return c
		}
	}
	return clusters[0]
}

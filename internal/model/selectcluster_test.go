package model

import "testing"

func TestSelectCluster_EmptyList(t *testing.T) {
	got := SelectCluster(nil)
	if _, ok := got.(Empty); !ok {
		t.Errorf("expected Empty for no clusters, got %s", got.Kind())
	}
}

func TestSelectCluster_PrefersFocused(t *testing.T) {
	unfocused := OnlyUsername{Username: Field{ID: "u1", Type: TypeUsername}}
	focused := OnlyPassword{Password: Field{ID: "p1", Type: TypePassword, Focused: true}}

	got := SelectCluster([]Cluster{unfocused, focused})
	if got.Kind() != "only-password" {
		t.Errorf("expected the focused cluster, got %s", got.Kind())
	}
}

func TestSelectCluster_FallsBackToFirst(t *testing.T) {
	first := OnlyUsername{Username: Field{ID: "u1", Type: TypeUsername}}
	second := OnlyUsername{Username: Field{ID: "u2", Type: TypeUsername}}

	got := SelectCluster([]Cluster{first, second})
	cluster, ok := got.(OnlyUsername)
	if !ok {
		t.Fatalf("expected OnlyUsername, got %s", got.Kind())
	}
	if cluster.Username.ID != "u1" {
		t.Errorf("expected first cluster, got %s", cluster.Username.ID)
	}
}

func TestClusterIsFocused(t *testing.T) {
	pair := UsernameAndPassword{
		Username: Field{ID: "u", Type: TypeUsername},
		Password: Field{ID: "p", Type: TypePassword, Focused: true},
	}
	if !pair.IsFocused() {
		t.Error("cluster with a focused member must report focused")
	}

	cold := SignUp{
		Username:       Field{ID: "u", Type: TypeEmail},
		Password:       Field{ID: "p1", Type: TypePassword},
		RepeatPassword: Field{ID: "p2", Type: TypePassword},
	}
	if cold.IsFocused() {
		t.Error("cluster with no focused member must not report focused")
	}

	if !(Empty{}).IsFocused() {
		t.Error("the empty cluster reports focused")
	}
}

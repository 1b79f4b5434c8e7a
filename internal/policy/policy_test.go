package policy

import (
	"testing"

	"github.com/fieldsense/fieldsense/internal/model"
	"github.com/fieldsense/fieldsense/internal/session"
)

func TestDecide_EmptyAndCreditCardNotSaveable(t *testing.T) {
	store := session.NewStore()

	got := Decide(store, "s1", model.Empty{}, false)
	if _, ok := got.(NotSaveable); !ok {
		t.Errorf("expected NotSaveable for empty cluster, got %s", got.Kind())
	}

	card := model.CreditCard{Number: model.Field{ID: "num", Type: model.TypeCardNumber}}
	got = Decide(store, "s1", card, false)
	if _, ok := got.(NotSaveable); !ok {
		t.Errorf("expected NotSaveable for credit card, got %s", got.Kind())
	}
	if _, ok := store.Username("s1"); ok {
		t.Error("not-saveable outcomes must not touch session state")
	}
}

func TestDecide_SignUpSavesBoth(t *testing.T) {
	store := session.NewStore()
	cluster := model.SignUp{
		Username:       model.Field{ID: "u", Type: model.TypeEmail},
		Password:       model.Field{ID: "p1", Type: model.TypePassword},
		RepeatPassword: model.Field{ID: "p2", Type: model.TypePassword},
	}

	got := Decide(store, "s1", cluster, true)
	both, ok := got.(SaveUsernameAndPassword)
	if !ok {
		t.Fatalf("expected SaveUsernameAndPassword, got %s", got.Kind())
	}
	if both.Username.ID != "u" || both.Password.ID != "p1" {
		t.Errorf("expected u/p1, got %s/%s", both.Username.ID, both.Password.ID)
	}
	if ref, ok := store.Username("s1"); !ok || ref.FieldID != "u" {
		t.Error("expected recorded username u")
	}
	if ref, ok := store.Password("s1"); !ok || ref.FieldID != "p1" {
		t.Error("expected recorded password p1")
	}
}

func TestDecide_LoginPairSavesBoth(t *testing.T) {
	store := session.NewStore()
	cluster := model.UsernameAndPassword{
		Username: model.Field{ID: "u", Type: model.TypeUsername},
		Password: model.Field{ID: "p", Type: model.TypePassword},
	}
	// Browser gating does not apply to complete pairs.
	got := Decide(store, "s1", cluster, true)
	if _, ok := got.(SaveUsernameAndPassword); !ok {
		t.Errorf("expected SaveUsernameAndPassword, got %s", got.Kind())
	}
}

func TestDecide_OnlyPasswordBrowserGated(t *testing.T) {
	store := session.NewStore()
	cluster := model.OnlyPassword{Password: model.Field{ID: "p", Type: model.TypePassword}}

	got := Decide(store, "s1", cluster, true)
	if _, ok := got.(NotSaveable); !ok {
		t.Errorf("expected NotSaveable on browser host, got %s", got.Kind())
	}
	if _, ok := store.Password("s1"); ok {
		t.Error("browser-gated decision must not record state")
	}
}

func TestDecide_OnlyPasswordNonBrowser(t *testing.T) {
	store := session.NewStore()
	cluster := model.OnlyPassword{Password: model.Field{ID: "p", Type: model.TypePassword}}

	got := Decide(store, "s1", cluster, false)
	save, ok := got.(SavePassword)
	if !ok {
		t.Fatalf("expected SavePassword, got %s", got.Kind())
	}
	if save.Password.ID != "p" {
		t.Errorf("expected password p, got %s", save.Password.ID)
	}
	if save.PriorUsername != nil {
		t.Error("expected no prior username on a fresh session")
	}
	if ref, ok := store.Password("s1"); !ok || ref.FieldID != "p" {
		t.Error("expected recorded password p")
	}
}

func TestDecide_OnlyUsernameBrowserGated(t *testing.T) {
	store := session.NewStore()
	cluster := model.OnlyUsername{Username: model.Field{ID: "u", Type: model.TypeUsername}}

	got := Decide(store, "s1", cluster, true)
	if _, ok := got.(NotSaveable); !ok {
		t.Errorf("expected NotSaveable on browser host, got %s", got.Kind())
	}
}

func TestDecide_MultiStepCarriesPriorUsername(t *testing.T) {
	store := session.NewStore()

	// Step 1: a lone username screen.
	step1 := Decide(store, "s1", model.OnlyUsername{
		Username: model.Field{ID: "u", Type: model.TypeUsername},
	}, false)
	if _, ok := step1.(SaveUsername); !ok {
		t.Fatalf("expected SaveUsername on step 1, got %s", step1.Kind())
	}

	// Step 2: a lone password screen in the same session.
	step2 := Decide(store, "s1", model.OnlyPassword{
		Password: model.Field{ID: "p", Type: model.TypePassword},
	}, false)
	save, ok := step2.(SavePassword)
	if !ok {
		t.Fatalf("expected SavePassword on step 2, got %s", step2.Kind())
	}
	if save.PriorUsername == nil {
		t.Fatal("expected the step-1 username to be carried")
	}
	if save.PriorUsername.FieldID != "u" || save.PriorUsername.SessionID != "s1" {
		t.Errorf("unexpected prior username: %+v", save.PriorUsername)
	}
}

func TestDecide_DifferentSessionDoesNotLeakUsername(t *testing.T) {
	store := session.NewStore()
	Decide(store, "s1", model.OnlyUsername{
		Username: model.Field{ID: "u", Type: model.TypeUsername},
	}, false)

	got := Decide(store, "s2", model.OnlyPassword{
		Password: model.Field{ID: "p", Type: model.TypePassword},
	}, false)
	save := got.(SavePassword)
	if save.PriorUsername != nil {
		t.Error("a username from another session must not be carried")
	}
}

func TestDecide_Idempotent(t *testing.T) {
	store := session.NewStore()
	cluster := model.OnlyPassword{Password: model.Field{ID: "p", Type: model.TypePassword}}

	first := Decide(store, "s1", cluster, false)
	second := Decide(store, "s1", cluster, false)

	a, ok1 := first.(SavePassword)
	b, ok2 := second.(SavePassword)
	if !ok1 || !ok2 {
		t.Fatalf("expected SavePassword twice, got %s then %s", first.Kind(), second.Kind())
	}
	if a.Password.ID != b.Password.ID {
		t.Error("repeated decide with unchanged inputs must yield the same directive")
	}
	if (a.PriorUsername == nil) != (b.PriorUsername == nil) {
		t.Error("repeated decide must not change the prior-username carry")
	}
}

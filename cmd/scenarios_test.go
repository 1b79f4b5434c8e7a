package cmd

import (
	"path/filepath"
	"testing"

	"github.com/fieldsense/fieldsense/internal/browser"
	"github.com/fieldsense/fieldsense/internal/model"
	"github.com/fieldsense/fieldsense/internal/policy"
	"github.com/fieldsense/fieldsense/internal/session"
)

// runScenario loads a captured snapshot, clusters it, selects the active
// cluster, and runs the save-session policy, the way one autofill callback
// would.
func runScenario(t *testing.T, store *session.Store, sessionID, fixture string) (model.Cluster, policy.Directive) {
	t.Helper()
	snap, err := loadSnapshot(filepath.Join("testdata", fixture))
	if err != nil {
		t.Fatalf("load %s: %v", fixture, err)
	}
	clusters := model.ClusterFields(snap.Fields)
	selected := model.SelectCluster(clusters)
	isBrowser := browser.Default().IsBrowser(snap.Package)
	return selected, policy.Decide(store, sessionID, selected, isBrowser)
}

func TestScenario_LoginFormInApp(t *testing.T) {
	store := session.NewStore()
	selected, directive := runScenario(t, store, "s1", "login_simple.yaml")

	pair, ok := selected.(model.UsernameAndPassword)
	if !ok {
		t.Fatalf("expected username-and-password cluster, got %s", selected.Kind())
	}
	if !pair.IsFocused() {
		t.Error("expected the selected cluster to be focused (its password is)")
	}
	save, ok := directive.(policy.SaveUsernameAndPassword)
	if !ok {
		t.Fatalf("expected SaveUsernameAndPassword, got %s", directive.Kind())
	}
	if save.Username.ID != "username-input" || save.Password.ID != "password-input" {
		t.Errorf("unexpected fields: %s / %s", save.Username.ID, save.Password.ID)
	}
}

func TestScenario_LonePasswordInBrowser(t *testing.T) {
	store := session.NewStore()
	selected, directive := runScenario(t, store, "s1", "password_only.yaml")

	if _, ok := selected.(model.OnlyPassword); !ok {
		t.Fatalf("expected only-password cluster, got %s", selected.Kind())
	}
	if _, ok := directive.(policy.NotSaveable); !ok {
		t.Errorf("browser host must not double-prompt, got %s", directive.Kind())
	}
}

func TestScenario_MultiStepLogin(t *testing.T) {
	store := session.NewStore()

	_, step1 := runScenario(t, store, "flow", "multistep_step1.yaml")
	save1, ok := step1.(policy.SaveUsername)
	if !ok {
		t.Fatalf("expected SaveUsername on step 1, got %s", step1.Kind())
	}
	if save1.Username.ID != "email-input" {
		t.Errorf("unexpected step-1 field: %s", save1.Username.ID)
	}

	_, step2 := runScenario(t, store, "flow", "multistep_step2.yaml")
	save2, ok := step2.(policy.SavePassword)
	if !ok {
		t.Fatalf("expected SavePassword on step 2, got %s", step2.Kind())
	}
	if save2.PriorUsername == nil || save2.PriorUsername.FieldID != "email-input" {
		t.Errorf("expected step-1 username carried into step 2, got %+v", save2.PriorUsername)
	}
}

func TestScenario_SignUpForm(t *testing.T) {
	store := session.NewStore()
	selected, directive := runScenario(t, store, "s1", "signup.yaml")

	if _, ok := selected.(model.SignUp); !ok {
		t.Fatalf("expected sign-up cluster, got %s", selected.Kind())
	}
	if _, ok := directive.(policy.SaveUsernameAndPassword); !ok {
		t.Errorf("expected SaveUsernameAndPassword, got %s", directive.Kind())
	}
}

func TestScenario_CardNumberLogin(t *testing.T) {
	store := session.NewStore()
	selected, directive := runScenario(t, store, "s1", "card_login.yaml")

	pair, ok := selected.(model.UsernameAndPassword)
	if !ok {
		t.Fatalf("expected username-and-password cluster, got %s", selected.Kind())
	}
	if pair.Username.ID != "account-number" {
		t.Errorf("expected the card number as identifier, got %s", pair.Username.ID)
	}
	if _, ok := directive.(policy.SaveUsernameAndPassword); !ok {
		t.Errorf("expected SaveUsernameAndPassword, got %s", directive.Kind())
	}
}

func TestScenario_CreditCardForm(t *testing.T) {
	store := session.NewStore()
	selected, directive := runScenario(t, store, "s1", "creditcard.yaml")

	card, ok := selected.(model.CreditCard)
	if !ok {
		t.Fatalf("expected credit-card cluster, got %s", selected.Kind())
	}
	holder, ok := card.Holder.(model.FirstNameLastName)
	if !ok {
		t.Fatalf("expected split holder, got %#v", card.Holder)
	}
	// Generic name + last name: the generic field acts as the first name.
	if holder.FirstName.ID != "holder-name" || holder.LastName.ID != "holder-last" {
		t.Errorf("unexpected holder: %s / %s", holder.FirstName.ID, holder.LastName.ID)
	}
	if _, ok := directive.(policy.NotSaveable); !ok {
		t.Errorf("credit cards are never auto-saveable, got %s", directive.Kind())
	}
}

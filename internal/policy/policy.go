// Package policy decides, after the user submits a form, whether and what
// credential material should be offered back to the vault for saving.
package policy

import (
	"github.com/fieldsense/fieldsense/internal/model"
	"github.com/fieldsense/fieldsense/internal/session"
)

// Directive is the decided outcome of a save-session evaluation.
type Directive interface {
	// Kind returns a stable name for the directive variant.
	Kind() string

	directive()
}

// NotSaveable means no save prompt should be offered.
type NotSaveable struct{}

func (NotSaveable) Kind() string { return "not-saveable" }
func (NotSaveable) directive()   {}

// SaveUsername offers a lone identifier for saving, anticipating a password
// on a later step.
type SaveUsername struct {
	Username model.Field
}

func (SaveUsername) Kind() string { return "save-username" }
func (SaveUsername) directive()   {}

// SavePassword offers a lone password for saving. PriorUsername carries the
// identifier recorded on an earlier step of the same session, if any, so a
// multi-step login resolves into one combined save offer.
type SavePassword struct {
	Password      model.Field
	PriorUsername *session.FieldRef
}

func (SavePassword) Kind() string { return "save-password" }
func (SavePassword) directive()   {}

// SaveUsernameAndPassword offers a complete credential pair for saving.
type SaveUsernameAndPassword struct {
	Username model.Field
	Password model.Field
}

func (SaveUsernameAndPassword) Kind() string { return "save-username-and-password" }
func (SaveUsernameAndPassword) directive()   {}

// Decide maps the selected cluster to a save directive and records the
// involved fields in the session store.
//
// Browser hosts already prompt natively for single-field forms, so lone
// username or password clusters on a browser host are not saveable from
// here; a second prompt would be redundant. Non-browser apps have no native
// facility, so the save path is offered.
func Decide(store *session.Store, sessionID string, cluster model.Cluster, isBrowserHost bool) Directive {
	switch c := cluster.(type) {
	case model.Empty, model.CreditCard:
		return NotSaveable{}

	case model.SignUp:
		return saveBoth(store, sessionID, c.Username, c.Password)

	case model.UsernameAndPassword:
		return saveBoth(store, sessionID, c.Username, c.Password)

	case model.OnlyPassword:
		if isBrowserHost {
			return NotSaveable{}
		}
		var prior *session.FieldRef
		if ref, ok := store.Username(sessionID); ok {
			prior = &ref
		}
		store.RecordPassword(sessionID, session.FieldRef{
			SessionID: sessionID,
			FieldID:   c.Password.ID,
		})
		return SavePassword{Password: c.Password, PriorUsername: prior}

	case model.OnlyUsername:
		if isBrowserHost {
			return NotSaveable{}
		}
		store.RecordUsername(sessionID, session.FieldRef{
			SessionID: sessionID,
			FieldID:   c.Username.ID,
		})
		return SaveUsername{Username: c.Username}

	default:
		return NotSaveable{}
	}
}

func saveBoth(store *session.Store, sessionID string, username, password model.Field) Directive {
	store.RecordUsername(sessionID, session.FieldRef{SessionID: sessionID, FieldID: username.ID})
	store.RecordPassword(sessionID, session.FieldRef{SessionID: sessionID, FieldID: password.ID})
	return SaveUsernameAndPassword{Username: username, Password: password}
}

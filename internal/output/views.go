package output

import (
	"github.com/fieldsense/fieldsense/internal/model"
	"github.com/fieldsense/fieldsense/internal/policy"
	"github.com/fieldsense/fieldsense/internal/session"
)

// FieldView is the serializable shape of a field inside a result.
type FieldView struct {
	ID      string `yaml:"id"                json:"id"`
	Type    string `yaml:"type"              json:"type"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
}

func fieldView(f model.Field) *FieldView {
	return &FieldView{ID: f.ID, Type: string(f.Type), Focused: f.Focused}
}

// CardView is the serializable shape of a credit-card cluster's parts.
type CardView struct {
	Number          *FieldView `yaml:"number"                     json:"number"`
	Cvv             *FieldView `yaml:"cvv,omitempty"              json:"cvv,omitempty"`
	Holder          *FieldView `yaml:"holder,omitempty"           json:"holder,omitempty"`
	HolderFirstName *FieldView `yaml:"holder_first,omitempty"     json:"holder_first,omitempty"`
	HolderLastName  *FieldView `yaml:"holder_last,omitempty"      json:"holder_last,omitempty"`
	Expiration      *FieldView `yaml:"expiration,omitempty"       json:"expiration,omitempty"`
	ExpirationMonth *FieldView `yaml:"expiration_month,omitempty" json:"expiration_month,omitempty"`
	ExpirationYear  *FieldView `yaml:"expiration_year,omitempty"  json:"expiration_year,omitempty"`
}

// ClusterView flattens a cluster union into a tagged serializable record.
type ClusterView struct {
	Kind           string     `yaml:"kind"                      json:"kind"`
	Focused        bool       `yaml:"focused,omitempty"         json:"focused,omitempty"`
	URL            string     `yaml:"url,omitempty"             json:"url,omitempty"`
	Username       *FieldView `yaml:"username,omitempty"        json:"username,omitempty"`
	Password       *FieldView `yaml:"password,omitempty"        json:"password,omitempty"`
	RepeatPassword *FieldView `yaml:"repeat_password,omitempty" json:"repeat_password,omitempty"`
	Card           *CardView  `yaml:"card,omitempty"            json:"card,omitempty"`
}

// NewClusterView builds the serializable view of a cluster.
func NewClusterView(c model.Cluster) ClusterView {
	view := ClusterView{
		Kind:    c.Kind(),
		Focused: anyViewFocused(c),
		URL:     model.ClusterURL(c),
	}
	switch cluster := c.(type) {
	case model.OnlyUsername:
		view.Username = fieldView(cluster.Username)
	case model.OnlyPassword:
		view.Password = fieldView(cluster.Password)
	case model.UsernameAndPassword:
		view.Username = fieldView(cluster.Username)
		view.Password = fieldView(cluster.Password)
	case model.SignUp:
		view.Username = fieldView(cluster.Username)
		view.Password = fieldView(cluster.Password)
		view.RepeatPassword = fieldView(cluster.RepeatPassword)
	case model.CreditCard:
		view.Card = newCardView(cluster)
	}
	return view
}

func anyViewFocused(c model.Cluster) bool {
	for _, f := range c.Fields() {
		if f.Focused {
			return true
		}
	}
	return false
}

func newCardView(c model.CreditCard) *CardView {
	card := &CardView{Number: fieldView(c.Number)}
	if c.Cvv != nil {
		card.Cvv = fieldView(*c.Cvv)
	}
	switch holder := c.Holder.(type) {
	case model.SingleField:
		card.Holder = fieldView(holder.Field)
	case model.FirstNameLastName:
		card.HolderFirstName = fieldView(holder.FirstName)
		card.HolderLastName = fieldView(holder.LastName)
	}
	switch exp := c.Expiration.(type) {
	case model.MonthYearSameField:
		card.Expiration = fieldView(exp.Field)
	case model.MonthYearFields:
		card.ExpirationMonth = fieldView(exp.Month)
		card.ExpirationYear = fieldView(exp.Year)
	case model.MonthFullYearFields:
		card.ExpirationMonth = fieldView(exp.Month)
		card.ExpirationYear = fieldView(exp.Year)
	}
	return card
}

// DirectiveView flattens a save directive into a tagged serializable record.
type DirectiveView struct {
	Kind          string            `yaml:"kind"                     json:"kind"`
	Username      *FieldView        `yaml:"username,omitempty"       json:"username,omitempty"`
	Password      *FieldView        `yaml:"password,omitempty"       json:"password,omitempty"`
	PriorUsername *session.FieldRef `yaml:"prior_username,omitempty" json:"prior_username,omitempty"`
}

// NewDirectiveView builds the serializable view of a directive.
func NewDirectiveView(d policy.Directive) DirectiveView {
	view := DirectiveView{Kind: d.Kind()}
	switch directive := d.(type) {
	case policy.SaveUsername:
		view.Username = fieldView(directive.Username)
	case policy.SavePassword:
		view.Password = fieldView(directive.Password)
		view.PriorUsername = directive.PriorUsername
	case policy.SaveUsernameAndPassword:
		view.Username = fieldView(directive.Username)
		view.Password = fieldView(directive.Password)
	}
	return view
}

// ClusterResult is the top-level output of the `cluster` command.
type ClusterResult struct {
	App      string        `yaml:"app,omitempty" json:"app,omitempty"`
	TS       int64         `yaml:"ts,omitempty"  json:"ts,omitempty"`
	Clusters []ClusterView `yaml:"clusters"      json:"clusters"`
	Selected ClusterView   `yaml:"selected"      json:"selected"`
}

// DecideResult is the top-level output of the `decide` command.
type DecideResult struct {
	SessionID string        `yaml:"session"           json:"session"`
	Browser   bool          `yaml:"browser,omitempty" json:"browser,omitempty"`
	Selected  ClusterView   `yaml:"selected"          json:"selected"`
	Directive DirectiveView `yaml:"directive"         json:"directive"`
}

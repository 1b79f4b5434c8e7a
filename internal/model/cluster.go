package model

// Cluster is a typed group of fields representing one logical form on a
// screen: a login form (in its partial variants), a sign-up form, or a
// credit-card form. Clusters are created fresh per clustering run and are
// read-only afterwards; the field sets of the clusters from one run are
// pairwise disjoint.
type Cluster interface {
	// Fields returns the member fields in a stable order.
	Fields() []Field
	// IsFocused reports whether any member field holds input focus.
	IsFocused() bool
	// Kind returns a stable name for the cluster variant.
	Kind() string

	cluster()
}

func anyFocused(fields []Field) bool {
	for _, f := range fields {
		if f.Focused {
			return true
		}
	}
	return false
}

// ClusterURL returns the origin associated with the cluster's first field,
// if any field carries one.
func ClusterURL(c Cluster) string {
	fields := c.Fields()
	if len(fields) == 0 {
		return ""
	}
	return fields[0].URL
}

// Empty is the cluster of no fields. It reports focused so that selection
// over an empty candidate list behaves as "nothing to do" rather than
// scanning further.
type Empty struct{}

func (Empty) Fields() []Field { return nil }
func (Empty) IsFocused() bool { return true }
func (Empty) Kind() string    { return "empty" }
func (Empty) cluster()        {}

// OnlyUsername is a login form where only the identifier field was found.
type OnlyUsername struct {
	Username Field
}

func (c OnlyUsername) Fields() []Field { return []Field{c.Username} }
func (c OnlyUsername) IsFocused() bool { return anyFocused(c.Fields()) }
func (OnlyUsername) Kind() string      { return "only-username" }
func (OnlyUsername) cluster()          {}

// OnlyPassword is a login form where only the password field was found.
type OnlyPassword struct {
	Password Field
}

func (c OnlyPassword) Fields() []Field { return []Field{c.Password} }
func (c OnlyPassword) IsFocused() bool { return anyFocused(c.Fields()) }
func (OnlyPassword) Kind() string      { return "only-password" }
func (OnlyPassword) cluster()          {}

// UsernameAndPassword is a complete login form.
type UsernameAndPassword struct {
	Username Field
	Password Field
}

func (c UsernameAndPassword) Fields() []Field { return []Field{c.Username, c.Password} }
func (c UsernameAndPassword) IsFocused() bool { return anyFocused(c.Fields()) }
func (UsernameAndPassword) Kind() string      { return "username-and-password" }
func (UsernameAndPassword) cluster()          {}

// SignUp is a registration form: one identifier plus a password and its
// confirmation.
type SignUp struct {
	Username       Field
	Password       Field
	RepeatPassword Field
}

func (c SignUp) Fields() []Field {
	return []Field{c.Username, c.Password, c.RepeatPassword}
}
func (c SignUp) IsFocused() bool { return anyFocused(c.Fields()) }
func (SignUp) Kind() string      { return "sign-up" }
func (SignUp) cluster()          {}

// CardHolder is how the holder's name is laid out on a credit-card form.
type CardHolder interface {
	Fields() []Field
	cardHolder()
}

// SingleField is a holder name collected in one field.
type SingleField struct {
	Field Field
}

func (h SingleField) Fields() []Field { return []Field{h.Field} }
func (SingleField) cardHolder()       {}

// FirstNameLastName is a holder name split across two fields.
type FirstNameLastName struct {
	FirstName Field
	LastName  Field
}

func (h FirstNameLastName) Fields() []Field { return []Field{h.FirstName, h.LastName} }
func (FirstNameLastName) cardHolder()       {}

// Expiration is how the card expiration date is laid out.
type Expiration interface {
	Fields() []Field
	expiration()
}

// MonthYearSameField is a combined MM/YY input.
type MonthYearSameField struct {
	Field Field
}

func (e MonthYearSameField) Fields() []Field { return []Field{e.Field} }
func (MonthYearSameField) expiration()       {}

// MonthYearFields is a month field paired with a 2-digit year field.
type MonthYearFields struct {
	Month Field
	Year  Field
}

func (e MonthYearFields) Fields() []Field { return []Field{e.Month, e.Year} }
func (MonthYearFields) expiration()       {}

// MonthFullYearFields is a month field paired with a 4-digit year field.
// Formatting of the fill value differs from MonthYearFields; clustering
// treats both the same.
type MonthFullYearFields struct {
	Month Field
	Year  Field
}

func (e MonthFullYearFields) Fields() []Field { return []Field{e.Month, e.Year} }
func (MonthFullYearFields) expiration()       {}

// CreditCard is a payment form. Only the number is required; the remaining
// parts are omitted when no matching field exists.
type CreditCard struct {
	Number     Field
	Holder     CardHolder // nil when no holder field found
	Cvv        *Field     // nil when no cvv field found
	Expiration Expiration // nil when no expiration field found
}

func (c CreditCard) Fields() []Field {
	fields := []Field{c.Number}
	if c.Holder != nil {
		fields = append(fields, c.Holder.Fields()...)
	}
	if c.Cvv != nil {
		fields = append(fields, *c.Cvv)
	}
	if c.Expiration != nil {
		fields = append(fields, c.Expiration.Fields()...)
	}
	return fields
}
func (c CreditCard) IsFocused() bool { return anyFocused(c.Fields()) }
func (CreditCard) Kind() string      { return "credit-card" }
func (CreditCard) cluster()          {}

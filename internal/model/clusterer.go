package model

// ClusterFields groups a flat field list into typed clusters. It is a pure
// function: deterministic for a given input order, total (absence of
// structure yields more singleton clusters, never an error), and each field
// ends up in at most one cluster.
//
// Steps run in a strict order, each removing its consumed fields from
// further consideration:
//
//  1. sign-up detection (one identifier + exactly two passwords)
//  2. card-number-as-username (two-field forms that log in with a card number)
//  3. mutual-nearest login pairing
//  4. leftover password singletons
//  5. credit-card assembly (at most one per run)
func ClusterFields(fields []Field) []Cluster {
	var clusters []Cluster
	assigned := make(map[string]bool, len(fields))

	clusterLogins(fields, &clusters, assigned)
	clusterCreditCards(fields, &clusters, assigned)

	return clusters
}

func clusterLogins(fields []Field, clusters *[]Cluster, assigned map[string]bool) {
	detectSignUpForm(fields, clusters, assigned)
	detectCardNumberAsUsername(fields, clusters, assigned)

	usernames := usernameFields(fields, assigned)
	passwords := fieldsOfType(fields, TypePassword, assigned)

	for _, username := range usernames {
		candidates := unassignedOf(passwords, assigned)
		nearestPassword, ok := NearestField(username, candidates)
		if ok {
			// Confirm the pairing is mutual: if the password's nearest
			// remaining username is a different field, that username will
			// claim it on a later iteration.
			remaining := unassignedOf(usernames, assigned)
			nearestUsername, _ := NearestField(nearestPassword, remaining)
			if nearestUsername.ID == username.ID {
				*clusters = append(*clusters, UsernameAndPassword{
					Username: username,
					Password: nearestPassword,
				})
				assigned[nearestPassword.ID] = true
			} else {
				*clusters = append(*clusters, OnlyUsername{Username: username})
			}
		} else {
			*clusters = append(*clusters, OnlyUsername{Username: username})
		}
		assigned[username.ID] = true
	}

	for _, password := range passwords {
		if !assigned[password.ID] {
			*clusters = append(*clusters, OnlyPassword{Password: password})
			assigned[password.ID] = true
		}
	}
}

// detectSignUpForm must run before login pairing: a sign-up form's two
// password fields would otherwise produce a spurious login pair plus an
// orphan password.
func detectSignUpForm(fields []Field, clusters *[]Cluster, assigned map[string]bool) {
	usernames := usernameFields(fields, assigned)
	passwords := fieldsOfType(fields, TypePassword, assigned)
	if len(usernames) != 1 || len(passwords) != 2 {
		return
	}
	cluster := SignUp{
		Username:       usernames[0],
		Password:       passwords[0],
		RepeatPassword: passwords[1],
	}
	*clusters = append(*clusters, cluster)
	for _, f := range cluster.Fields() {
		assigned[f.ID] = true
	}
}

// detectCardNumberAsUsername handles sign-in forms that ask for a card or
// account number as the login identifier. Without it a two-field
// card-number + password form would yield only an orphan password.
func detectCardNumberAsUsername(fields []Field, clusters *[]Cluster, assigned map[string]bool) {
	usernames := usernameFields(fields, assigned)
	passwords := fieldsOfType(fields, TypePassword, assigned)
	cardNumbers := fieldsOfType(fields, TypeCardNumber, assigned)
	if len(usernames) != 0 || len(passwords) != 1 || len(fields) != 2 || len(cardNumbers) != 1 {
		return
	}
	*clusters = append(*clusters, UsernameAndPassword{
		Username: cardNumbers[0],
		Password: passwords[0],
	})
	assigned[cardNumbers[0].ID] = true
	assigned[passwords[0].ID] = true
}

func clusterCreditCards(fields []Field, clusters *[]Cluster, assigned map[string]bool) {
	number, ok := firstOfType(fields, TypeCardNumber, assigned)
	if !ok {
		return
	}
	assigned[number.ID] = true

	cluster := CreditCard{Number: number}
	if cvv, ok := firstOfType(fields, TypeCardCvv, assigned); ok {
		assigned[cvv.ID] = true
		cluster.Cvv = &cvv
	}
	cluster.Holder = cardHolder(fields, assigned)
	cluster.Expiration = cardExpiration(fields, assigned)

	*clusters = append(*clusters, cluster)
}

// cardHolder resolves the holder layout. Last-name-bearing fields take
// precedence, then first-name, then a generic name field.
func cardHolder(fields []Field, assigned map[string]bool) CardHolder {
	generic, hasGeneric := firstOfType(fields, TypeCardholderName, assigned)
	firstName, hasFirst := firstOfType(fields, TypeCardholderFirstName, assigned)
	lastName, hasLast := firstOfType(fields, TypeCardholderLastName, assigned)

	switch {
	case hasLast && hasFirst:
		assigned[firstName.ID] = true
		assigned[lastName.ID] = true
		return FirstNameLastName{FirstName: firstName, LastName: lastName}
	case hasLast && hasGeneric:
		assigned[generic.ID] = true
		assigned[lastName.ID] = true
		return FirstNameLastName{FirstName: generic, LastName: lastName}
	case hasLast:
		assigned[lastName.ID] = true
		return SingleField{Field: lastName}
	case hasFirst && hasGeneric:
		assigned[firstName.ID] = true
		assigned[generic.ID] = true
		return FirstNameLastName{FirstName: firstName, LastName: generic}
	case hasFirst:
		assigned[firstName.ID] = true
		return SingleField{Field: firstName}
	case hasGeneric:
		assigned[generic.ID] = true
		return SingleField{Field: generic}
	default:
		return nil
	}
}

// cardExpiration resolves the expiration layout. A combined MM/YY field wins
// over separate month and year fields; a 2-digit year pairing is tried before
// a 4-digit one.
func cardExpiration(fields []Field, assigned map[string]bool) Expiration {
	combined, hasCombined := firstOfType(fields, TypeCardExpirationMMYY, assigned)
	month, hasMonth := firstOfType(fields, TypeCardExpirationMM, assigned)
	year, hasYear := firstOfType(fields, TypeCardExpirationYY, assigned)
	fullYear, hasFullYear := firstOfType(fields, TypeCardExpirationYYYY, assigned)

	switch {
	case hasCombined:
		assigned[combined.ID] = true
		return MonthYearSameField{Field: combined}
	case hasMonth && hasYear:
		assigned[month.ID] = true
		assigned[year.ID] = true
		return MonthYearFields{Month: month, Year: year}
	case hasMonth && hasFullYear:
		assigned[month.ID] = true
		assigned[fullYear.ID] = true
		return MonthFullYearFields{Month: month, Year: fullYear}
	default:
		return nil
	}
}

func usernameFields(fields []Field, assigned map[string]bool) []Field {
	var result []Field
	for _, f := range fields {
		if !assigned[f.ID] && f.IsUsername() {
			result = append(result, f)
		}
	}
	return result
}

func fieldsOfType(fields []Field, t FieldType, assigned map[string]bool) []Field {
	var result []Field
	for _, f := range fields {
		if !assigned[f.ID] && f.Type == t {
			result = append(result, f)
		}
	}
	return result
}

func firstOfType(fields []Field, t FieldType, assigned map[string]bool) (Field, bool) {
	for _, f := range fields {
		if !assigned[f.ID] && f.Type == t {
			return f, true
		}
	}
	return Field{}, false
}

func unassignedOf(fields []Field, assigned map[string]bool) []Field {
	var result []Field
	for _, f := range fields {
		if !assigned[f.ID] {
			result = append(result, f)
		}
	}
	return result
}

package model

// FieldType classifies what a fillable field expects. Classification itself
// happens upstream (the platform's field enumeration); this package only
// consumes it.
type FieldType string

const (
	TypeUsername            FieldType = "username"
	TypeEmail               FieldType = "email"
	TypePassword            FieldType = "password"
	TypeCardNumber          FieldType = "card-number"
	TypeCardholderName      FieldType = "cardholder-name"
	TypeCardholderFirstName FieldType = "cardholder-first-name"
	TypeCardholderLastName  FieldType = "cardholder-last-name"
	TypeCardCvv             FieldType = "card-cvv"
	TypeCardExpirationMM    FieldType = "card-expiration-mm"
	TypeCardExpirationYY    FieldType = "card-expiration-yy"
	TypeCardExpirationYYYY  FieldType = "card-expiration-yyyy"
	TypeCardExpirationMMYY  FieldType = "card-expiration-mmyy"
	TypeOther               FieldType = "other"
)

var knownFieldTypes = map[FieldType]bool{
	TypeUsername:            true,
	TypeEmail:               true,
	TypePassword:            true,
	TypeCardNumber:          true,
	TypeCardholderName:      true,
	TypeCardholderFirstName: true,
	TypeCardholderLastName:  true,
	TypeCardCvv:             true,
	TypeCardExpirationMM:    true,
	TypeCardExpirationYY:    true,
	TypeCardExpirationYYYY:  true,
	TypeCardExpirationMMYY:  true,
	TypeOther:               true,
}

// ParseFieldType maps a raw type string to a FieldType. Unknown strings
// degrade to TypeOther rather than failing: a mislabeled field must still
// produce a well-formed clustering.
func ParseFieldType(s string) FieldType {
	t := FieldType(s)
	if knownFieldTypes[t] {
		return t
	}
	return TypeOther
}

// Field is one fillable UI element detected on a screen. Fields are immutable
// snapshots: created when the platform enumerates the screen, discarded after
// clustering.
type Field struct {
	ID string `yaml:"id" json:"id"` // opaque, unique within a snapshot

	Type FieldType `yaml:"type" json:"type"`

	// ParentPath is the ordered chain of ancestor container ids,
	// root first, immediate parent last.
	ParentPath []string `yaml:"path,omitempty" json:"path,omitempty"`

	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
	URL     string `yaml:"url,omitempty"     json:"url,omitempty"`
}

// IsUsername reports whether the field can act as the login identifier.
func (f Field) IsUsername() bool {
	return f.Type == TypeUsername || f.Type == TypeEmail
}

package validate

// Type is a JSON schema type name.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeNull    Type = "null"
)

// Schema declares the expected shape of a tool result.
//
// It is the subset of JSON Schema the tool layer actually uses:
// typed properties with required/default handling, enums, string and
// numeric constraints, and homogeneous arrays.
type Schema struct {
	// Type is the expected JSON type.
	Type Type

	// Properties declares the schema for each object property.
	Properties map[string]*Schema

	// Required lists object properties that must be present and non-null.
	Required []string

	// AdditionalProperties, when false, rejects properties not listed
	// in Properties. Default: allowed.
	AdditionalProperties *bool

	// Items is the schema for every array element.
	Items *Schema

	// Enum restricts the value to one of the listed values.
	Enum []any

	// Pattern is a regular expression strings must match.
	Pattern string

	// MinLength/MaxLength bound string length.
	MinLength *int
	MaxLength *int

	// Minimum/Maximum bound numeric values (inclusive).
	Minimum *float64
	Maximum *float64

	// Default is applied to absent optional object properties. The
	// caller sees the default in the returned data.
	Default any
}

// Violation is a single schema violation with its field path.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// String renders "path: message" (or just the message at the root).
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Validator checks values against a Schema and returns a normalized
// copy with defaults filled in and friendly coercions applied.
//
// Coercions are deliberately narrow: numeric strings become numbers,
// and whole floats satisfy integer schemas. Anything wider would hide
// genuinely malformed tool output.
type Validator struct {
	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

var _ schemaValidator = (*Validator)(nil)

// NewValidator returns a Validator with an empty pattern cache.
func NewValidator() *Validator {
	return &Validator{patterns: make(map[string]*regexp.Regexp)}
}

// Validate checks value against schema. It returns the normalized
// value (defaults applied, coercions performed) and the list of
// violations found. The value is usable only when the list is empty.
func (v *Validator) Validate(value any, schema *Schema) (any, []Violation) {
	if schema == nil {
		return value, nil
	}
	norm, err := normalize(value)
	if err != nil {
		return nil, []Violation{{Message: fmt.Sprintf("value is not representable as JSON: %v", err)}}
	}
	var violations []Violation
	out := v.check(norm, schema, "", &violations)
	return out, violations
}

// normalize round-trips the value through JSON so the walk only ever
// sees map[string]any, []any, float64, string, bool, and nil.
func normalize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch value.(type) {
	case map[string]any, []any, string, bool, float64:
		return value, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v *Validator) check(value any, schema *Schema, path string, violations *[]Violation) any {
	if value == nil {
		if schema.Type == TypeNull || schema.Type == "" {
			return nil
		}
		add(violations, path, fmt.Sprintf("expected %s, got null", schema.Type))
		return nil
	}

	switch schema.Type {
	case TypeObject:
		return v.checkObject(value, schema, path, violations)
	case TypeArray:
		return v.checkArray(value, schema, path, violations)
	case TypeString:
		return v.checkString(value, schema, path, violations)
	case TypeNumber, TypeInteger:
		return v.checkNumber(value, schema, path, violations)
	case TypeBoolean:
		b, ok := value.(bool)
		if !ok {
			add(violations, path, fmt.Sprintf("expected boolean, got %s", typeName(value)))
			return value
		}
		v.checkEnum(b, schema, path, violations)
		return b
	case TypeNull:
		add(violations, path, fmt.Sprintf("expected null, got %s", typeName(value)))
		return value
	case "":
		// Untyped schema constrains nothing beyond an enum.
		v.checkEnum(value, schema, path, violations)
		return value
	default:
		add(violations, path, fmt.Sprintf("schema declares unknown type %q", schema.Type))
		return value
	}
}

func (v *Validator) checkObject(value any, schema *Schema, path string, violations *[]Violation) any {
	obj, ok := value.(map[string]any)
	if !ok {
		add(violations, path, fmt.Sprintf("expected object, got %s", typeName(value)))
		return value
	}

	out := make(map[string]any, len(obj))
	for k, val := range obj {
		out[k] = val
	}

	for _, req := range schema.Required {
		if val, present := out[req]; !present || val == nil {
			add(violations, joinPath(path, req), "required property is missing")
		}
	}

	for name, propSchema := range schema.Properties {
		propPath := joinPath(path, name)
		val, present := out[name]
		if !present {
			if propSchema.Default != nil {
				def, err := normalize(propSchema.Default)
				if err != nil {
					add(violations, propPath, fmt.Sprintf("default is not representable as JSON: %v", err))
					continue
				}
				out[name] = v.check(def, propSchema, propPath, violations)
			}
			continue
		}
		out[name] = v.check(val, propSchema, propPath, violations)
	}

	if schema.AdditionalProperties != nil && !*schema.AdditionalProperties {
		for name := range obj {
			if _, declared := schema.Properties[name]; !declared {
				add(violations, joinPath(path, name), "property is not declared by the schema")
			}
		}
	}

	return out
}

func (v *Validator) checkArray(value any, schema *Schema, path string, violations *[]Violation) any {
	arr, ok := value.([]any)
	if !ok {
		add(violations, path, fmt.Sprintf("expected array, got %s", typeName(value)))
		return value
	}
	if schema.Items == nil {
		return arr
	}
	out := make([]any, len(arr))
	for i, elem := range arr {
		out[i] = v.check(elem, schema.Items, fmt.Sprintf("%s[%d]", path, i), violations)
	}
	return out
}

func (v *Validator) checkString(value any, schema *Schema, path string, violations *[]Violation) any {
	s, ok := value.(string)
	if !ok {
		add(violations, path, fmt.Sprintf("expected string, got %s", typeName(value)))
		return value
	}
	n := len([]rune(s))
	if schema.MinLength != nil && n < *schema.MinLength {
		add(violations, path, fmt.Sprintf("length %d is below minimum %d", n, *schema.MinLength))
	}
	if schema.MaxLength != nil && n > *schema.MaxLength {
		add(violations, path, fmt.Sprintf("length %d exceeds maximum %d", n, *schema.MaxLength))
	}
	if schema.Pattern != "" {
		re, err := v.compile(schema.Pattern)
		if err != nil {
			add(violations, path, fmt.Sprintf("schema pattern %q does not compile: %v", schema.Pattern, err))
		} else if !re.MatchString(s) {
			add(violations, path, fmt.Sprintf("value does not match pattern %q", schema.Pattern))
		}
	}
	v.checkEnum(s, schema, path, violations)
	return s
}

func (v *Validator) checkNumber(value any, schema *Schema, path string, violations *[]Violation) any {
	var f float64
	switch n := value.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			add(violations, path, fmt.Sprintf("expected %s, got string %q", schema.Type, n))
			return value
		}
		f = parsed
	default:
		add(violations, path, fmt.Sprintf("expected %s, got %s", schema.Type, typeName(value)))
		return value
	}

	if schema.Type == TypeInteger && f != math.Trunc(f) {
		add(violations, path, fmt.Sprintf("expected integer, got %v", f))
		return f
	}
	if schema.Minimum != nil && f < *schema.Minimum {
		add(violations, path, fmt.Sprintf("value %v is below minimum %v", f, *schema.Minimum))
	}
	if schema.Maximum != nil && f > *schema.Maximum {
		add(violations, path, fmt.Sprintf("value %v exceeds maximum %v", f, *schema.Maximum))
	}
	v.checkEnum(f, schema, path, violations)
	return f
}

func (v *Validator) checkEnum(value any, schema *Schema, path string, violations *[]Violation) {
	if len(schema.Enum) == 0 {
		return
	}
	for _, allowed := range schema.Enum {
		norm, err := normalize(allowed)
		if err != nil {
			continue
		}
		if equalJSON(value, norm) {
			return
		}
	}
	add(violations, path, fmt.Sprintf("value %v is not one of the allowed values", value))
}

func (v *Validator) compile(pattern string) (*regexp.Regexp, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if re, ok := v.patterns[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	v.patterns[pattern] = re
	return re, nil
}

func equalJSON(a, b any) bool {
	ra, errA := json.Marshal(a)
	rb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(ra) == string(rb)
}

func add(violations *[]Violation, path, message string) {
	*violations = append(*violations, Violation{Path: path, Message: message})
}

func joinPath(base, prop string) string {
	if base == "" {
		return prop
	}
	return base + "." + prop
}

func typeName(value any) string {
	switch value.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"errors"
	"fmt"
	"slices"
)

// Field names a metadata input. Values match the JSON field names.
type Field string

const (
	FieldSpecies       Field = "species"
	FieldObservedCount Field = "observed_count"
	FieldGender        Field = "gender"
	FieldAge           Field = "age"
	FieldHealth        Field = "health"
	FieldLocation      Field = "location"
	FieldRemarks       Field = "additional_description"
)

// AllFields lists every field the form can show, in display order.
var AllFields = []Field{
	FieldSpecies, FieldObservedCount, FieldGender, FieldAge,
	FieldHealth, FieldLocation, FieldRemarks,
}

var ErrInvalidConfig = errors.New("invalid wizard config")

// Config selects the active field set and the fields that must be filled
// before submission.
type Config struct {
	Fields   []Field
	Required []Field
}

// DefaultConfig shows every field and requires species, count, gender
// and age.
func DefaultConfig() Config {
	return Config{
		Fields:   slices.Clone(AllFields),
		Required: []Field{FieldSpecies, FieldObservedCount, FieldGender, FieldAge},
	}
}

func (c Config) Active(f Field) bool {
	return slices.Contains(c.Fields, f)
}

func (c Config) IsRequired(f Field) bool {
	return slices.Contains(c.Required, f)
}

// Validate rejects unknown fields, required fields that are not shown,
// and forms without a species input.
func (c Config) Validate() error {
	for _, f := range c.Fields {
		if !slices.Contains(AllFields, f) {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidConfig, f)
		}
	}
	for _, f := range c.Required {
		if !c.Active(f) {
			return fmt.Errorf("%w: required field %q is not active", ErrInvalidConfig, f)
		}
	}
	if !c.Active(FieldSpecies) {
		return fmt.Errorf("%w: species field is mandatory", ErrInvalidConfig)
	}
	return nil
}

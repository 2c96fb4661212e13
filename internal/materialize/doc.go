// Package materialize builds an unsaved destination entity from a rewritten
// relation record.
//
// Records are decoded onto the entity struct by json tag with
// go-viper/mapstructure. Input is weakly typed: JSON numbers, numeric strings
// and timestamp strings convert to the field types. Entities whose type
// implements relation.Importer are marked as import-created.
package materialize

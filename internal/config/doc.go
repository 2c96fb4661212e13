// Package config loads relation-factory settings.
//
// Precedence (highest to lowest): flags > RELFACTORY_* env vars > config file
// > defaults. The config file is relation-factory.yaml in the working
// directory unless --config names another.
//
//	project_id: 42
//	members_file: members.yaml
//	input: export.ndjson
//	output: "-"
//	on_unknown: skip
//	strict: false
//	log_level: info
package config

// Package models holds typed records over reactivity.Object, generated from
// models.yaml.
package models

//go:generate go run ../cmd/codegen -m models.yaml -o models_gen.go

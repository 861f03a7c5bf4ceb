// Package hcl provides the HCL implementation of config.Loader and the HCL
// parser for declarative plugin definitions.
//
// It is responsible for parsing HCL files with hclparse, decoding them with
// gohcl and translating the result into the format-agnostic config.Config
// and declarative.Definition models.
package hcl

// Package openapi derives declarative form definitions from OpenAPI
// documents: an operation's request body becomes a definition whose
// constraints (required, pattern, length bounds, format) compile into
// engine rules. Loading and parsing implementations live under
// internal/openapi; this package holds the public contracts and the
// source/document wrappers that keep kin-openapi out of the API
// surface.
package openapi

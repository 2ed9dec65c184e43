// Package service contains the application services that orchestrate
// domain objects and stores into the operations exposed by the API layer.
package service

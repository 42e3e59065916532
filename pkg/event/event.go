// Package event publishes registry and workflow notifications so
// downstream consumers (audit pipelines, ops hooks) can react without
// polling the engine.
package event

// Publisher interface defines anything that can publish an event
type Publisher interface {
	Publish(i interface{}) error
}

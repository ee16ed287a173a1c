// Package connectors groups implementations of the LinkSource interface
// for external link-graph providers. Each connector knows how to resolve
// a topic name and fetch its outgoing references from a specific API.
//
// Currently the only provider is Wikipedia (the wikipedia subpackage).
package connectors

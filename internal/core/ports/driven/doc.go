// Package driven defines the outbound ports of the core: interfaces the
// core services depend on, implemented by the driven adapters (token file,
// OAuth exchange, HTTP gateway, config store, history store).
package driven

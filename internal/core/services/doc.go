// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// AuthService owns the token lifecycle: exchange, persistence,
// manual override, and expiry. LookupService runs the eligibility
// operations through the gateway, normalizes the responses, and
// records each lookup in history.
package services

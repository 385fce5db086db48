// Package triage is the business boundary for patient triage. It defines
// the pure rule-based classification engine (Classify, Merge), the Service
// (remote enrichment with local fallback, persistence, notification), the
// Store interface, and the domain models shared with the HTTP API.
package triage

// Package domain defines the account data model and the contracts of its
// external collaborators (events, key stores).
// It contains plain types and interfaces only.
package domain

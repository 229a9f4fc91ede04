// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/company, domain/todo,
// domain/sequence, ...). This root package holds the persisted-record base,
// sentinel and localizable errors, cross-entity enumerations and the
// Action/WriteStager interfaces used for staged multi-record writes.
package domain

// Package gostcat provides a searchable local catalog of GOST technical
// standards. It aggregates standard records from several public web
// sources, de-duplicates them into a SQLite store, and answers substring
// queries against the store with a live-fetch fallback.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package gostcat

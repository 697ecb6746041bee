// Package spectacle extracts canonical show records from a fixed catalog of
// hand-authored show pages and loads them into a record store.
//
// This package contains domain types, interfaces and the pure parts of the
// extraction engine (extractor chains, vocabulary, assembly) following Ben
// Johnson's Standard Package Layout. Implementations live in subdirectories
// named after their primary dependency (e.g., sqlite/, goquery/, fs/).
package spectacle

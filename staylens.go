// Package staylens turns JavaScript-rendered travel-listing pages into
// typed JSON records usable by downstream tools (voice assistants,
// comparison and budget calculators). It fetches a page, locates the
// embedded client-state JSON inside a script element, and projects the
// arbitrarily-shaped payload down to a stable schema.
//
// This package contains domain types and the pure pipeline functions
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency (e.g. resty/,
// goquery/, rod/).
package staylens

// Package checks implements the asset wiring check.
//
// The server source file (src/main.rs) must mention every template
// (templates/*.tera) as "../templates/<name>" and every static file
// (static/*) as "../static/<name>". The check is purely textual: the source
// is read once, filtered to lines carrying either marker, and each asset's
// expected reference is searched for as a substring of those lines.
//
// A missing source file is an error. A missing asset directory is not: it
// simply contributes no assets.
package checks

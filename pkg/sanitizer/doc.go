// Package sanitizer normalizes customer and room input before it is
// validated or stored.
//
// All functions are idempotent. Invalid input comes back as an empty
// string or empty slice rather than an error; validation decides what
// to do about it.
//
// Normalization covers:
//   - Phone numbers: E.164 format, parsed against the site's supported regions
//   - Names and addresses: collapsed whitespace, trimmed
//   - Emails: trimmed and lowercased
//   - Weekday names: canonical capitalized English form ("monday " becomes "Monday")
//   - Slices: duplicates and empties removed after normalization
package sanitizer

// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time and conversion:
//     now := timezone.Now()
//     appTime := timezone.ToAppTime(someTime)
//
//  2. Parsing dates submitted by the search form:
//     t, err := timezone.Parse("2006-01-02", "2025-06-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is initialized when the package is imported. Use IANA names such as
// "UTC", "Asia/Karachi" or "Asia/Dubai"; the zone database is embedded.
package timezone

// Package timezone centralizes time handling in the application timezone.
//
// The location is configured through the APP_TIMEZONE environment variable
// using standard IANA names ("UTC", "Europe/London", "Asia/Tokyo") and is
// initialized when the package is imported. timezone.Now is used everywhere
// a row timestamp is produced so created_at ordering is consistent.
package timezone

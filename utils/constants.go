// File: utils/constants.go
package utils

import "time"

// DraftCachePrefix is the prefix used for Redis enrollment draft keys.
const DraftCachePrefix = "draft:"

// DraftCacheTTL is the time-to-live for enrollment draft sessions. Drafts
// survive a page reload within this window and expire on their own otherwise.
const DraftCacheTTL = 1 * time.Hour

// CalendarCachePrefix is the prefix used for cached section open-date sets.
const CalendarCachePrefix = "calendar:"

// CalendarCacheTTL is the time-to-live for cached section calendars.
const CalendarCacheTTL = 5 * time.Minute

// FetchTimeout bounds every outbound call (Mongo calendar reads issued per
// section, Transbank requests) so a hung dependency surfaces as a retryable
// error instead of blocking the wizard.
const FetchTimeout = 10 * time.Second

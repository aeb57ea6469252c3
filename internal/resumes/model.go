package resumes

import "time"

// Resume is a metadata row for one uploaded PDF. Rows are never updated or
// deleted; a row whose blob has been removed out-of-band is filtered at list
// time instead.
type Resume struct {
	ID         int64
	UserID     int64
	FileName   string
	StorageKey string
	UploadedAt time.Time
}

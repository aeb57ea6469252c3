package resumes

import "time"

// ResumeLink is the outward-facing listing entry: metadata plus a temporary
// download URL.
type ResumeLink struct {
	ID         int64     `json:"id"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
	URL        string    `json:"url"`
}

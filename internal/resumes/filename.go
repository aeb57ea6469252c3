package resumes

import (
	"strings"
	"time"
)

const defaultBuilderName = "Resume"

// BuilderData is the structured payload the resume builder submits alongside
// the rendered PDF. Only the person's name is used server-side.
type BuilderData struct {
	PersonalInfo struct {
		FullName string `json:"fullName"`
	} `json:"personalInfo"`
}

// BuilderFileName derives the stored file name for a builder save: the
// person's name with every character outside ASCII alphanumerics replaced by
// an underscore, followed by the UTC timestamp with colons replaced by
// hyphens, suffixed ".pdf".
//
// "Jane Doe" at 2024-01-02T03:04:05 yields "Jane_Doe_2024-01-02T03-04-05.pdf".
func BuilderFileName(fullName string, now time.Time) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = defaultBuilderName
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	ts := now.UTC().Format("2006-01-02T15:04:05")
	ts = strings.ReplaceAll(ts, ":", "-")

	return b.String() + "_" + ts + ".pdf"
}

func isASCIIAlnum(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return false
}

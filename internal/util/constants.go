package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Upload MIME allow-list building blocks.
const (
	MimeVideo       = "video/"
	MimeAudio       = "audio/"
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
)

// LessonResourcesPath is the storage prefix for uploaded lesson files.
const LessonResourcesPath = "lesson-resources"

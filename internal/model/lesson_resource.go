package model

import "strings"

type ResourceType string

const (
	ResourceDocument ResourceType = "document"
	ResourceImage    ResourceType = "image"
	ResourceVideo    ResourceType = "video"
	ResourceAudio    ResourceType = "audio"
	ResourceArchive  ResourceType = "archive"
	ResourceOther    ResourceType = "other"
)

// LessonResource is an uploaded file attached to a lesson. Deletion is
// soft (is_active) unless explicitly permanent.
// swagger:model LessonResource
type LessonResource struct {
	UUIDBase
	Title         string       `gorm:"size:255;not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	Filename      string       `gorm:"size:255;not null" json:"filename"`
	OriginalName  string       `gorm:"size:255" json:"originalName"`
	Mimetype      string       `gorm:"size:100" json:"mimetype"`
	Size          int64        `gorm:"default:0" json:"size"`
	FilePath      string       `gorm:"size:512" json:"filePath"`
	FileURL       string       `gorm:"size:512" json:"fileUrl"`
	ResourceType  ResourceType `gorm:"size:20;default:'other'" json:"resourceType"`
	LessonID      string       `gorm:"index;type:varchar(36)" json:"lessonId"`
	UploaderID    uint         `gorm:"index;type:bigint unsigned" json:"uploaderId"`
	DownloadCount int          `gorm:"default:0" json:"downloadCount"`
	IsActive      bool         `gorm:"default:true" json:"isActive"`
}

func (LessonResource) TableName() string {
	return "lesson_resources"
}

// ResourceTypeFromMime maps a detected MIME type onto the stored resource type.
func ResourceTypeFromMime(mimetype string) ResourceType {
	switch {
	case strings.HasPrefix(mimetype, "image/"):
		return ResourceImage
	case strings.HasPrefix(mimetype, "video/"):
		return ResourceVideo
	case strings.HasPrefix(mimetype, "audio/"):
		return ResourceAudio
	case strings.Contains(mimetype, "pdf"),
		strings.Contains(mimetype, "msword"),
		strings.Contains(mimetype, "document"),
		strings.Contains(mimetype, "text"),
		strings.Contains(mimetype, "spreadsheet"),
		strings.Contains(mimetype, "presentation"):
		return ResourceDocument
	case strings.Contains(mimetype, "zip"), strings.Contains(mimetype, "rar"):
		return ResourceArchive
	}
	return ResourceOther
}

package models

// CameraLog is a raw observation from the gate camera, kept verbatim for
// troubleshooting scans that never became a CheckEvent.
type CameraLog struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	RecordedAt string  `json:"recorded_at" gorm:"size:26;not null"`
	Source     string  `json:"source" gorm:"size:64"`
	Status     string  `json:"status" gorm:"size:32"`
	Marker     string  `json:"marker" gorm:"size:64"`
	Score      float64 `json:"score"`
	Message    string  `json:"message" gorm:"type:text"`
}

package entity

import "time"

// Snapshot schema versions. V1 is the full form carrying metadata, wizard
// position and the analysis result; V2 is the condensed form tagged with
// "version": "2.0". Importers never merge across versions.
const (
	SnapshotAppVersion  = "1.0.0"
	SnapshotV2Tag       = "2.0"
	SnapshotWorkshopTag = "Agentic AI Workshop - iFAB"
)

type SnapshotMetadata struct {
	ExportDate time.Time `json:"export_date"`
	AppVersion string    `json:"app_version"`
	Workshop   string    `json:"workshop"`
}

// SnapshotV1 is the full-form export.
type SnapshotV1 struct {
	Metadata        SnapshotMetadata  `json:"metadata"`
	Answers         map[string]Answer `json:"answers"`
	CurrentQuestion int               `json:"current_question"`
	Section         Phase             `json:"section"`
	Analysis        *AnalysisResult   `json:"analysis"`
}

// SnapshotV2 is the condensed export.
type SnapshotV2 struct {
	Version         string            `json:"version"`
	Timestamp       time.Time         `json:"timestamp"`
	Answers         map[string]Answer `json:"answers"`
	CurrentQuestion int               `json:"current_question"`
}

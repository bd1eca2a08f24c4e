package services

import (
	"context"
	"time"
)

// BackupResult describes a finished database backup run.
type BackupResult struct {
	FileName    string    `json:"file_name"`
	SizeBytes   int64     `json:"size_bytes"`
	Uploaded    bool      `json:"uploaded"`
	DriveFileID string    `json:"drive_file_id,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// BackupSvcFacade defines operations for database backups
type BackupSvcFacade interface {
	// RunBackup dumps the database, uploads the dump when a Drive folder is
	// configured, and prunes old local dumps.
	RunBackup(ctx context.Context) (*BackupResult, error)
}

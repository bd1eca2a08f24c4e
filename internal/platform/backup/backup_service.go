// Package backup dumps the database with pg_dump and optionally ships the
// dump to a Google Drive folder.
package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/defterpro/defter_backend/internal/platform/config"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const dumpFilePrefix = "defter_backup_"

// Service runs database backups per the application configuration.
type Service struct {
	cfg *config.Config
}

// NewService creates a backup service.
func NewService(cfg *config.Config) portssvc.BackupSvcFacade {
	return &Service{cfg: cfg}
}

// Ensure Service implements the facade
var _ portssvc.BackupSvcFacade = (*Service)(nil)

// RunBackup dumps the database to the backup directory, uploads the dump to
// Drive when a folder is configured, then prunes old local dumps.
func (s *Service) RunBackup(ctx context.Context) (*portssvc.BackupResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	started := time.Now()

	if err := os.MkdirAll(s.cfg.BackupDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	fileName := dumpFilePrefix + started.Format("20060102_150405") + ".dump"
	dumpPath := filepath.Join(s.cfg.BackupDir, fileName)

	// Custom format keeps dumps compact and restorable with pg_restore.
	cmd := exec.CommandContext(ctx, "pg_dump", "--format=custom", "--file", dumpPath, "--dbname", s.cfg.DatabaseURL)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pg_dump failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	info, err := os.Stat(dumpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat dump file: %w", err)
	}

	result := &portssvc.BackupResult{
		FileName:  fileName,
		SizeBytes: info.Size(),
		StartedAt: started,
	}

	if s.cfg.BackupDriveFolderID != "" {
		fileID, err := s.uploadToDrive(ctx, dumpPath, fileName)
		if err != nil {
			// Keep the local dump even when the upload fails.
			logger.Error("Drive upload failed", slog.String("error", err.Error()), slog.String("file", fileName))
		} else {
			result.Uploaded = true
			result.DriveFileID = fileID
		}
	}

	if err := s.pruneOldDumps(ctx); err != nil {
		logger.Warn("Failed to prune old backups", slog.String("error", err.Error()))
	}

	result.FinishedAt = time.Now()
	logger.Info("Backup finished",
		slog.String("file", fileName),
		slog.Int64("size_bytes", result.SizeBytes),
		slog.Bool("uploaded", result.Uploaded),
	)
	return result, nil
}

func (s *Service) uploadToDrive(ctx context.Context, dumpPath, fileName string) (string, error) {
	credJSON, err := os.ReadFile(s.cfg.BackupCredentialsFile)
	if err != nil {
		return "", fmt.Errorf("failed to read drive credentials: %w", err)
	}

	// Service account auth: dumps land in a folder shared with the account.
	conf, err := google.JWTConfigFromJSON(credJSON, drive.DriveFileScope)
	if err != nil {
		return "", fmt.Errorf("failed to parse drive credentials: %w", err)
	}

	svc, err := drive.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return "", fmt.Errorf("failed to create drive client: %w", err)
	}

	f, err := os.Open(dumpPath)
	if err != nil {
		return "", fmt.Errorf("failed to open dump file: %w", err)
	}
	defer f.Close()

	meta := &drive.File{
		Name:    fileName,
		Parents: []string{s.cfg.BackupDriveFolderID},
	}
	created, err := svc.Files.Create(meta).Media(f).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload dump to drive: %w", err)
	}
	return created.Id, nil
}

// pruneOldDumps keeps the newest BackupRetentionCount dumps and removes the rest.
func (s *Service) pruneOldDumps(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := os.ReadDir(s.cfg.BackupDir)
	if err != nil {
		return fmt.Errorf("failed to read backup directory: %w", err)
	}

	dumps := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), dumpFilePrefix) {
			dumps = append(dumps, e.Name())
		}
	}
	if len(dumps) <= s.cfg.BackupRetentionCount {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(dumps)
	for _, name := range dumps[:len(dumps)-s.cfg.BackupRetentionCount] {
		if err := os.Remove(filepath.Join(s.cfg.BackupDir, name)); err != nil {
			return fmt.Errorf("failed to remove old dump %s: %w", name, err)
		}
		logger.Info("Old backup removed", slog.String("file", name))
	}
	return nil
}

// StartScheduler runs backups on the configured interval until the context
// is cancelled.
func StartScheduler(ctx context.Context, svc portssvc.BackupSvcFacade, interval time.Duration, logger *slog.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := svc.RunBackup(ctx); err != nil {
					logger.Error("Scheduled backup failed", slog.String("error", err.Error()))
				}
			}
		}
	}()
}

package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// MaintenanceService performs database housekeeping. Backups run on the cron
// schedule from configuration and on demand via the developer endpoint.
type MaintenanceService struct {
	db        *sql.DB
	backupDir string
}

// NewMaintenanceService creates a new MaintenanceService writing backups to backupDir.
func NewMaintenanceService(db *sql.DB, backupDir string) *MaintenanceService {
	return &MaintenanceService{
		db:        db,
		backupDir: backupDir,
	}
}

// Backup writes a compacted copy of the database to the backup directory
// using VACUUM INTO and returns the backup file path.
func (s *MaintenanceService) Backup(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(s.backupDir, fmt.Sprintf("backup-%s.db", time.Now().UTC().Format("20060102-150405")))

	// VACUUM INTO refuses to overwrite an existing file, which also guards
	// against two backups racing into the same path.
	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}

	return path, nil
}

// RunScheduledBackup is the cron entrypoint: it backs up the database and logs
// the outcome instead of returning it.
func (s *MaintenanceService) RunScheduledBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	path, err := s.Backup(ctx)
	if err != nil {
		log.Printf("Scheduled backup failed: %v", err)
		return
	}
	log.Printf("Scheduled backup written to %s", path)
}

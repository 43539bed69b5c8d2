package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/datepick/internal/models"
	_ "modernc.org/sqlite"
)

const schemaVersion = 1

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'datepick init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) createSchema() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS presets (
			id TEXT PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			date_format TEXT NOT NULL,
			time_format TEXT NOT NULL,
			divider TEXT NOT NULL,
			date_time_format TEXT NOT NULL DEFAULT '',
			start_mode TEXT NOT NULL,
			preserve_view_mode INTEGER NOT NULL DEFAULT 0,
			closable INTEGER NOT NULL DEFAULT 0,
			min_date TEXT NOT NULL DEFAULT '',
			max_date TEXT NOT NULL DEFAULT '',
			disable TEXT NOT NULL DEFAULT '[]',
			marked TEXT NOT NULL DEFAULT '[]',
			mark_color TEXT NOT NULL DEFAULT '',
			localization TEXT NOT NULL DEFAULT '',
			initial_date TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`); err != nil {
		return err
	}

	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT OR IGNORE INTO meta (key, value) VALUES ('schema_version', ?)`,
		fmt.Sprintf("%d", schemaVersion)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) validateSchemaVersion() error {
	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&value)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	var version int
	if _, err := fmt.Sscanf(value, "%d", &version); err != nil {
		return fmt.Errorf("parsing schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", version, schemaVersion)
	}

	return nil
}

// GetDB exposes the raw connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) SavePreset(preset models.Preset) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	disable, err := json.Marshal(preset.Disable)
	if err != nil {
		return fmt.Errorf("failed to serialize disable set: %w", err)
	}
	marked, err := json.Marshal(preset.Marked)
	if err != nil {
		return fmt.Errorf("failed to serialize marked set: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO presets (
			id, name, date_format, time_format, divider, date_time_format,
			start_mode, preserve_view_mode, closable, min_date, max_date,
			disable, marked, mark_color, localization, initial_date,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		preset.ID, preset.Name, preset.DateFormat, preset.TimeFormat, preset.Divider,
		preset.DateTimeFormat, preset.StartMode, preset.PreserveViewMode, preset.Closable,
		preset.MinDate, preset.MaxDate, string(disable), string(marked),
		preset.MarkColor, preset.Localization, preset.InitialDate,
		preset.CreatedAt.Format(time.RFC3339), preset.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) GetPreset(name string) (models.Preset, error) {
	if s.db == nil {
		return models.Preset{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`
		SELECT id, name, date_format, time_format, divider, date_time_format,
		       start_mode, preserve_view_mode, closable, min_date, max_date,
		       disable, marked, mark_color, localization, initial_date,
		       created_at, updated_at
		FROM presets WHERE name = ?`, name)

	preset, err := scanPreset(row)
	if err == sql.ErrNoRows {
		return models.Preset{}, fmt.Errorf("preset not found: %s", name)
	}
	return preset, err
}

func (s *SQLiteStore) GetAllPresets() ([]models.Preset, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, name, date_format, time_format, divider, date_time_format,
		       start_mode, preserve_view_mode, closable, min_date, max_date,
		       disable, marked, mark_color, localization, initial_date,
		       created_at, updated_at
		FROM presets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []models.Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}
	return presets, rows.Err()
}

func (s *SQLiteStore) DeletePreset(name string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("preset not found: %s", name)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (models.Preset, error) {
	var p models.Preset
	var disable, marked, createdAt, updatedAt string

	err := row.Scan(
		&p.ID, &p.Name, &p.DateFormat, &p.TimeFormat, &p.Divider, &p.DateTimeFormat,
		&p.StartMode, &p.PreserveViewMode, &p.Closable, &p.MinDate, &p.MaxDate,
		&disable, &marked, &p.MarkColor, &p.Localization, &p.InitialDate,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return models.Preset{}, err
	}

	if disable != "" {
		if err := json.Unmarshal([]byte(disable), &p.Disable); err != nil {
			return models.Preset{}, fmt.Errorf("parsing disable set: %w", err)
		}
	}
	if marked != "" {
		if err := json.Unmarshal([]byte(marked), &p.Marked); err != nil {
			return models.Preset{}, fmt.Errorf("parsing marked set: %w", err)
		}
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		p.UpdatedAt = t
	}

	return p, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"rafpad-cli/internal/model"

	_ "modernc.org/sqlite"
)

const chatSettingsKey = "chat_settings"

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// busy_timeout avoids "database is locked" flakiness when a second
	// rafpad process touches the same state file.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS meta (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) getMeta(ctx context.Context, key string) (string, bool, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return "", false, err
	}
	defer db.Close()
	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM meta WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s Store) setMeta(ctx context.Context, key, value string) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx,
		`INSERT INTO meta (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value)
	return err
}

// LoadChatSettings returns the cached settings, or defaults when nothing has
// been saved yet (or the cached blob no longer parses).
func (s Store) LoadChatSettings(ctx context.Context) (model.ChatSettings, error) {
	raw, ok, err := s.getMeta(ctx, chatSettingsKey)
	if err != nil {
		return model.DefaultChatSettings(), err
	}
	if !ok {
		return model.DefaultChatSettings(), nil
	}
	var settings model.ChatSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return model.DefaultChatSettings(), nil
	}
	return settings.Clamp(), nil
}

func (s Store) SaveChatSettings(ctx context.Context, settings model.ChatSettings) error {
	data, err := json.Marshal(settings.Clamp())
	if err != nil {
		return err
	}
	return s.setMeta(ctx, chatSettingsKey, string(data))
}

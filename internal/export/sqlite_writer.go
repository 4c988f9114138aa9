// Package export writes a snapshot of disabled effects to a SQLite file for
// ad-hoc querying.
package export

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/finder"
)

const schema = `
CREATE TABLE IF NOT EXISTS disabled_effects (
	id INTEGER PRIMARY KEY,
	source TEXT NOT NULL,
	effect_id TEXT,
	effect_type TEXT,
	effect_name TEXT NOT NULL,
	effect_index INTEGER NOT NULL,
	description TEXT NOT NULL,
	effect JSON
);
CREATE INDEX IF NOT EXISTS idx_disabled_effects_source ON disabled_effects(source);

CREATE TABLE IF NOT EXISTS breadcrumbs (
	effect_id INTEGER NOT NULL REFERENCES disabled_effects(id),
	position INTEGER NOT NULL,
	key TEXT NOT NULL,
	source_id TEXT,
	title TEXT,
	item_index INTEGER,
	PRIMARY KEY (effect_id, position)
) WITHOUT ROWID;
`

// SQLiteWriter writes disabled effects into a SQLite database.
type SQLiteWriter struct {
	db *sql.DB
}

// NewSQLiteWriter opens (or creates) the database at dbPath and ensures the
// schema exists.
func NewSQLiteWriter(dbPath string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteWriter{db: db}, nil
}

// Write replaces the snapshot with effects, in one transaction. Rows keep
// the order of effects.
func (w *SQLiteWriter) Write(effects []finder.DisabledEffect) (err error) {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err := tx.Exec(`DELETE FROM breadcrumbs; DELETE FROM disabled_effects;`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	stmtEffect, err := tx.Prepare(`
		INSERT INTO disabled_effects (id, source, effect_id, effect_type, effect_name, effect_index, description, effect)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtEffect.Close() }()

	stmtCrumb, err := tx.Prepare(`
		INSERT INTO breadcrumbs (effect_id, position, key, source_id, title, item_index)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmtCrumb.Close() }()

	for i, d := range effects {
		id := i + 1
		record, err := json.Marshal(d.Effect)
		if err != nil {
			return fmt.Errorf("encode effect %d: %w", id, err)
		}
		if _, err := stmtEffect.Exec(
			id,
			d.Source,
			nullable(d.Effect["id"]),
			nullable(d.Effect["type"]),
			d.EffectName,
			d.Index,
			finder.Describe(d),
			string(record),
		); err != nil {
			return fmt.Errorf("insert effect %d: %w", id, err)
		}

		for pos, e := range d.Path.Entries() {
			if _, err := stmtCrumb.Exec(id, pos, e.Key, e.ID, e.Title, e.Index); err != nil {
				return fmt.Errorf("insert breadcrumb %s of effect %d: %w", e.Key, id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close closes the database.
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}

// nullable maps a non-string effect attribute to NULL.
func nullable(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

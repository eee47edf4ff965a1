package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value for key, or ErrNotFound.
func (d *Database) GetSetting(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", wrapSettingErr("get", key, ErrNotFound)
	}
	if err != nil {
		return "", wrapSettingErr("get", key, err)
	}
	return value.String, nil
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}

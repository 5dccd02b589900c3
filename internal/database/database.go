package database

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

type DB struct {
	conn *sql.DB
	log  *zap.Logger
	now  func() time.Time // подменяется в тестах
}

func New(dbPath string, logger *zap.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть базу данных: %w", err)
	}

	db := NewFromConn(conn, logger)
	if err := db.applySchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("не удалось применить схему: %w", err)
	}

	return db, nil
}

// NewFromConn оборачивает готовое соединение без применения схемы.
func NewFromConn(conn *sql.DB, logger *zap.Logger) *DB {
	return &DB{conn: conn, log: logger, now: time.Now}
}

// applySchema выполняет schema.sql; схема идемпотентна
func (db *DB) applySchema() error {
	_, err := db.conn.Exec(schemaSQL)
	return err
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping используется сервером здоровья для проверки доступности БД
func (db *DB) Ping() error {
	return db.conn.Ping()
}

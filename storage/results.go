package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/musa111-bot/maugli/exam"
)

// ResultStore — архив результатов экзаменов в Postgres.
// Архив необязателен: при nil-значении методы ничего не делают.
type ResultStore struct {
	db *pgxpool.Pool
}

// NewPool устанавливает подключение к базе данных по DSN.
func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	const op = "storage.NewPool"

	connConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}
	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}
	return db, nil
}

// NewResultStore создаёт архив результатов и создаёт таблицу, если её ещё нет.
func NewResultStore(ctx context.Context, db *pgxpool.Pool) (*ResultStore, error) {
	_, err := db.Exec(ctx, `
                CREATE TABLE IF NOT EXISTS exam_results (
                        id UUID PRIMARY KEY,
                        user_id BIGINT NOT NULL,
                        name TEXT NOT NULL,
                        score INT NOT NULL,
                        total INT NOT NULL,
                        passed BOOLEAN NOT NULL,
                        finished_at TIMESTAMPTZ NOT NULL
                )
        `)
	if err != nil {
		return nil, fmt.Errorf("failed to create exam_results table: %w", err)
	}
	return &ResultStore{db: db}, nil
}

// Save записывает результат завершённого экзамена.
func (r *ResultStore) Save(ctx context.Context, res exam.Result) error {
	if r == nil {
		return nil
	}
	_, err := r.db.Exec(ctx, `
                INSERT INTO exam_results (id, user_id, name, score, total, passed, finished_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
        `, uuid.New().String(), res.UserID, res.Name, res.Score, res.Total, res.Passed, res.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to save exam result: %w", err)
	}
	return nil
}

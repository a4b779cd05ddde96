package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema 帳本資料表。issuance 與 allocation 永不 DELETE：
// burn 只翻轉 alive 旗標，歷史查詢因此恆為一致
const schema = `
CREATE TABLE IF NOT EXISTS events (
	event_id      TEXT PRIMARY KEY,
	organizer     TEXT NOT NULL,
	capacity      INT NOT NULL CHECK (capacity > 0),
	total_minted  INT NOT NULL DEFAULT 0,
	total_claimed INT NOT NULL DEFAULT 0,
	total_burned  INT NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL,
	burn_deadline TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS issuances (
	event_id    TEXT NOT NULL REFERENCES events(event_id),
	issuance_id BIGINT NOT NULL,
	owner       TEXT NOT NULL,
	claimed     BOOLEAN NOT NULL DEFAULT FALSE,
	alive       BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (event_id, issuance_id)
);

CREATE INDEX IF NOT EXISTS idx_issuances_unclaimed
	ON issuances (event_id, issuance_id)
	WHERE alive AND NOT claimed;

CREATE TABLE IF NOT EXISTS token_ledgers (
	event_id     TEXT PRIMARY KEY,
	symbol       TEXT NOT NULL,
	name         TEXT NOT NULL,
	total_minted BIGINT NOT NULL DEFAULT 0,
	total_burned BIGINT NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS token_allocations (
	event_id   TEXT NOT NULL REFERENCES token_ledgers(event_id),
	owner      TEXT NOT NULL,
	amount     BIGINT NOT NULL CHECK (amount > 0),
	claimed    BOOLEAN NOT NULL DEFAULT TRUE,
	alive      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (event_id, owner)
);
`

// EnsureSchema 啟動時建立缺少的資料表；語句皆為冪等
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

package database

import (
	"database/sql"
	"fmt"
)

// schema is applied at startup. Statements are idempotent so restarting the
// server against an existing database is safe.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	avatar_url    TEXT,
	household_id  BIGINT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS households (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	invite_code TEXT NOT NULL UNIQUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS household_members (
	id           BIGSERIAL PRIMARY KEY,
	household_id BIGINT NOT NULL REFERENCES households(id) ON DELETE CASCADE,
	username     TEXT NOT NULL,
	joined_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (household_id, username)
);

CREATE TABLE IF NOT EXISTS bills (
	id                   BIGSERIAL PRIMARY KEY,
	household_id         BIGINT NOT NULL,
	title                TEXT NOT NULL,
	description          TEXT NOT NULL DEFAULT '',
	amount               DOUBLE PRECISION NOT NULL,
	payer                TEXT NOT NULL DEFAULT '',
	split_between        JSONB NOT NULL DEFAULT '[]',
	split_type           TEXT NOT NULL DEFAULT 'even',
	custom_split_amounts JSONB NOT NULL DEFAULT '{}',
	payment_direction    TEXT NOT NULL DEFAULT 'none',
	payments             JSONB NOT NULL DEFAULT '{}',
	status               TEXT NOT NULL DEFAULT 'unpaid',
	due_date             TEXT NOT NULL DEFAULT '',
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_bills_household ON bills(household_id);

CREATE TABLE IF NOT EXISTS tasks (
	id           BIGSERIAL PRIMARY KEY,
	household_id BIGINT NOT NULL,
	title        TEXT NOT NULL,
	notes        TEXT NOT NULL DEFAULT '',
	assignee     TEXT NOT NULL DEFAULT '',
	due_date     TEXT NOT NULL DEFAULT '',
	completed    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_tasks_household ON tasks(household_id);

CREATE TABLE IF NOT EXISTS chat_threads (
	id           BIGSERIAL PRIMARY KEY,
	household_id BIGINT NOT NULL,
	name         TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS chat_messages (
	id        UUID PRIMARY KEY,
	thread_id BIGINT NOT NULL REFERENCES chat_threads(id) ON DELETE CASCADE,
	sender    TEXT NOT NULL,
	body      TEXT NOT NULL,
	sent_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_thread ON chat_messages(thread_id, sent_at);

CREATE TABLE IF NOT EXISTS chat_thread_reads (
	thread_id    BIGINT NOT NULL REFERENCES chat_threads(id) ON DELETE CASCADE,
	username     TEXT NOT NULL,
	last_read_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (thread_id, username)
);

CREATE TABLE IF NOT EXISTS moods (
	id           BIGSERIAL PRIMARY KEY,
	household_id BIGINT NOT NULL,
	username     TEXT NOT NULL,
	mood         TEXT NOT NULL,
	note         TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_moods_household ON moods(household_id, created_at DESC);

CREATE TABLE IF NOT EXISTS notifications (
	id                  BIGSERIAL PRIMARY KEY,
	recipient           TEXT NOT NULL,
	message             TEXT NOT NULL,
	is_read             BOOLEAN NOT NULL DEFAULT FALSE,
	related_entity_type TEXT,
	related_entity_id   BIGINT,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient, created_at DESC);
`

// Migrate applies the embedded schema
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

package migrations

// All returns every schema migration in order
func All() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_users",
			SQL: `
				CREATE TABLE IF NOT EXISTS users (
					id BIGSERIAL PRIMARY KEY,
					username VARCHAR(50) NOT NULL,
					email VARCHAR(255),
					password_hash TEXT NOT NULL,
					salt TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT users_username_key UNIQUE (username)
				);
				CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email) WHERE email IS NOT NULL
			`,
		},
		{
			Version: 2,
			Name:    "create_expenses",
			SQL: `
				CREATE TABLE IF NOT EXISTS expenses (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
					category VARCHAR(100) NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					expense_date DATE NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses (user_id, expense_date);
				CREATE INDEX IF NOT EXISTS idx_expenses_user_category ON expenses (user_id, category)
			`,
		},
		{
			Version: 3,
			Name:    "create_budgets",
			SQL: `
				CREATE TABLE IF NOT EXISTS budgets (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					category VARCHAR(100) NOT NULL,
					limit_amount NUMERIC(12,2) NOT NULL CHECK (limit_amount >= 0),
					month CHAR(7) NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT budgets_user_category_month_key UNIQUE (user_id, category, month)
				)
			`,
		},
		{
			Version: 4,
			Name:    "create_password_reset_tokens",
			SQL: `
				CREATE TABLE IF NOT EXISTS password_reset_tokens (
					user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
					token_hash TEXT NOT NULL,
					expires_at TIMESTAMPTZ NOT NULL,
					used BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_password_reset_tokens_hash ON password_reset_tokens (token_hash)
			`,
		},
	}
}

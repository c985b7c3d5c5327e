package users

const (
	queryFindByEmail = `
		SELECT id, name, email, role, organization, active, password_hash, created_at
		FROM users
		WHERE LOWER(email) = $1
	`

	queryFindByID = `
		SELECT id, name, email, role, organization, active, password_hash, created_at
		FROM users
		WHERE id = $1
	`

	queryCreate = `
		INSERT INTO users (name, email, role, organization, password_hash, active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, name, email, role, organization, active, password_hash, created_at
	`

	queryList = `
		SELECT id, name, email, role, organization, active, password_hash, created_at
		FROM users
		ORDER BY created_at DESC
	`

	queryToggleActive = `
		UPDATE users
		SET active = NOT active
		WHERE id = $1 AND role <> 'admin'
		RETURNING id, name, email, role, organization, active, password_hash, created_at
	`

	queryDelete = `
		DELETE FROM users
		WHERE id = $1
	`

	queryCount = `
		SELECT COUNT(*) FROM users
	`

	queryCountActive = `
		SELECT COUNT(*) FROM users WHERE active
	`

	queryEnsureAdmin = `
		INSERT INTO users (name, email, role, organization, password_hash, active)
		VALUES ($1, $2, 'admin', $3, $4, TRUE)
		ON CONFLICT (email)
		DO UPDATE SET
			role = 'admin',
			active = TRUE,
			password_hash = EXCLUDED.password_hash
		RETURNING id, name, email, role, organization, active, password_hash, created_at
	`

	queryFindOrCreateByProvider = `
		INSERT INTO users (name, email, role, organization, password_hash, active, provider, provider_id)
		VALUES ($1, $2, 'user', $3, '', TRUE, $4, $5)
		ON CONFLICT (email)
		DO UPDATE SET
			provider = EXCLUDED.provider,
			provider_id = EXCLUDED.provider_id
		RETURNING id, name, email, role, organization, active, password_hash, created_at
	`
)

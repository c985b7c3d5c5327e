package documents

const (
	querySave = `
		INSERT INTO documents (user_id, type, title, content, preview)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, type, title, content, preview, created_at
	`

	queryListByUser = `
		SELECT id, user_id, type, title, content, preview, created_at
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	queryGet = `
		SELECT id, user_id, type, title, content, preview, created_at
		FROM documents
		WHERE id = $1 AND user_id = $2
	`

	queryDelete = `
		DELETE FROM documents
		WHERE id = $1 AND user_id = $2
	`

	queryCountAll = `
		SELECT COUNT(*) FROM documents
	`
)

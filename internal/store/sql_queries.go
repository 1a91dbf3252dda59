package store

// Fixed statements. Placeholders use the $n form, which both pgx and
// go-sqlite3 accept as long as they first appear in ascending order.
// Statements that depend on optional columns are built with squirrel.
const (
	createSession = `INSERT INTO sessions (id, user_id, created_at, expires_at)
    VALUES ($1, $2, $3, $4);`

	setSessionDataKey = `UPDATE sessions
    SET data_key = $1
    WHERE id = $2;`

	clearSessionDataKey = `UPDATE sessions
    SET data_key = NULL
    WHERE id = $1;`

	deleteSession = `DELETE FROM sessions
    WHERE id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= $1;`
)

const (
	usersTable    = "users"
	sessionsTable = "sessions"
	contactsTable = "contacts"
)

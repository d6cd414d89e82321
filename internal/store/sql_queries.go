package store

const (
	createUser = `INSERT INTO users (name, email, password_hash, preferred_language)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, password_hash, preferred_language, created_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, preferred_language, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password_hash, preferred_language, created_at
    FROM users
    WHERE id = $1;`

	createSession = `INSERT INTO sessions (user_id, token, expires_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, token, expires_at, created_at;`

	deleteSessionsByToken = `DELETE FROM sessions
    WHERE token = $1;`

	findPreferencesByUser = `SELECT id, user_id, preferred_input_mode, accessibility_settings, updated_at
    FROM user_preferences
    WHERE user_id = $1;`

	upsertPreferences = `INSERT INTO user_preferences (user_id, preferred_input_mode, accessibility_settings)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id) DO UPDATE
    SET preferred_input_mode = EXCLUDED.preferred_input_mode,
        accessibility_settings = EXCLUDED.accessibility_settings,
        updated_at = NOW()
    RETURNING id, user_id, preferred_input_mode, accessibility_settings, updated_at;`
)

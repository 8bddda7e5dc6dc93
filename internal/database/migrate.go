package database

import (
	"context"
	"database/sql"
	"fmt"
)

// ddl creates the four application tables when they do not exist.  Booking
// rows cascade on property or user removal; the engine itself never
// deletes bookings.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS properties (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location TEXT,
		price DECIMAL(10,2),
		description TEXT,
		image_url TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		property_id BIGINT UNSIGNED NOT NULL,
		user_id BIGINT UNSIGNED NOT NULL,
		in_time DATE NOT NULL,
		out_time DATE NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_bookings_property FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE CASCADE,
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		INDEX idx_bookings_property (property_id),
		INDEX idx_bookings_user (user_id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		property_id BIGINT UNSIGNED NOT NULL,
		comment TEXT NOT NULL,
		rating INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_feedback_property FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE CASCADE,
		CONSTRAINT chk_feedback_rating CHECK (rating BETWEEN 1 AND 5)
	) ENGINE=InnoDB`,
}

// Migrate creates the schema.  Statements are idempotent so the function
// can run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

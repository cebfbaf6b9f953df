package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT,
		password_hash TEXT,
		provider TEXT,
		role TEXT,
		reset_code TEXT,
		reset_code_expiry DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createKycTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_records (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		guardian_name TEXT,
		document_type TEXT,
		document_number TEXT,
		document_expiry DATETIME,
		front_image_url TEXT NOT NULL,
		back_image_url TEXT,
		face_image_url TEXT NOT NULL,
		status TEXT NOT NULL,
		rejection_reason TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price REAL,
		categories TEXT,
		sub_categories TEXT,
		product_types TEXT,
		brands TEXT,
		sizes TEXT,
		colors TEXT,
		image_urls TEXT,
		published BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCartTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE cart_lines (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		size TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, product_id, size)
	);`)
}

func createFavoriteTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE favorites (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, product_id)
	);`)
}

func createSliderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE slider_images (
		id TEXT PRIMARY KEY,
		image_url TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		total REAL,
		status TEXT NOT NULL,
		payment_ref TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		product_name TEXT NOT NULL,
		unit_price REAL,
		size TEXT,
		quantity INTEGER NOT NULL DEFAULT 1
	);`)
}

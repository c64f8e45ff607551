package db

import (
	"errors"
	"testing"

	"loan-tracker/internal/domain/user"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true)) // fake *sql.DB
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	// Expect a Ping from our code
	mock.ExpectPing()

	// Build a mysql dialector that uses our mocked *sql.DB
	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // don't query @@version
	})

	gdb, err := OpenGormWithDialector(dial, logger.Silent)
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}

	// Ensure all expectations were met
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("no ping"))

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := OpenGormWithDialector(dial)
	if err == nil {
		t.Fatalf("expected error, got nil (gdb=%v)", gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"debug":  logger.Info,
		"DEBUG":  logger.Info,
		"info":   logger.Warn,
		"warn":   logger.Warn,
		"error":  logger.Error,
		"silent": logger.Silent,
		"":       logger.Warn,
	}
	for in, want := range cases {
		if got := LogLevel(in); got != want {
			t.Fatalf("LogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func TestEnsureTable_CreatesWhenMissing(t *testing.T) {
	gdb := openSQLite(t)

	if err := ensureTable(gdb, &user.User{}); err != nil {
		t.Fatalf("ensureTable: %v", err)
	}
	if !gdb.Migrator().HasTable(&user.User{}) {
		t.Fatalf("users table not created")
	}
}

func TestEnsureTable_LeavesExistingTableAlone(t *testing.T) {
	gdb := openSQLite(t)
	// identity-system owned table with a column we do not model
	if err := gdb.Exec(`CREATE TABLE users (id TEXT PRIMARY KEY, user_name TEXT, email TEXT, password_hash TEXT NOT NULL)`).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}

	if err := ensureTable(gdb, &user.User{}); err != nil {
		t.Fatalf("ensureTable: %v", err)
	}
	if !gdb.Migrator().HasColumn(&user.User{}, "password_hash") {
		t.Fatalf("existing users table was altered")
	}
}

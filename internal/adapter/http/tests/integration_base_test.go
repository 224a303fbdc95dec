//go:build integration
// +build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"nestodo/db/migrations"
	dbadapter "nestodo/internal/adapter/db"
	"nestodo/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase owns a throwaway "<name>_test" schema on a real
// MySQL server. The suite is skipped when no server answers.
type IntegrationSuiteBase struct {
	suite.Suite

	server *sqlx.DB
	DB     *sqlx.DB
	schema string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	conf := &config.Config{
		DbHost:         envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:         envOrDefault("MYSQL_PORT", "3306"),
		DbUser:         envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword:     envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbParams:       os.Getenv("MYSQL_PARAMS"),
		DbMaxOpenConns: 10,
	}
	s.schema = envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "nestodo")+"_test")
	s.Require().True(strings.HasSuffix(s.schema, "_test"), "refusing to run against %q", s.schema)

	server, err := dbadapter.ConnectDB(conf)
	if err != nil {
		s.T().Skipf("mysql unavailable, skipping integration suite: %v", err)
	}
	s.server = server

	_, err = s.server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", s.schema))
	s.Require().NoError(err)

	conf.DbName = s.schema
	s.DB, err = dbadapter.ConnectDB(conf)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.server == nil {
		return
	}
	_, err := s.server.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.schema))
	s.Require().NoError(err)
	s.Require().NoError(s.server.Close())
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	resetSchema(s.T(), s.DB)
}

// resetSchema drops every table and replays the embedded migrations.
func resetSchema(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, err := db.Exec(`
SET FOREIGN_KEY_CHECKS = 0;
DROP TABLE IF EXISTS task_tags, workspace_tags, attachments, subtasks, tasks, task_lists, boards, workspaces, users, goose_db_version;
SET FOREIGN_KEY_CHECKS = 1;
`)
	require.NoError(t, err)

	migrator, err := dbadapter.NewMigrator(db, migrations.Files)
	require.NoError(t, err)
	applied, err := migrator.Up(context.Background())
	require.NoError(t, err)
	require.NotZero(t, applied)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestExtractQueryParts(t *testing.T) {
	testCases := []struct {
		sql       string
		queryType string
		table     string
	}{
		{`SELECT * FROM "users" WHERE id = $1 LIMIT 1 FOR UPDATE`, "SELECT", "users"},
		{"  insert INTO `conversion_requests` (`id`,`user_id`) VALUES (?,?)", "INSERT", "conversion_requests"},
		{`UPDATE "pool_status" SET "total_points_pending"=$1`, "UPDATE", "pool_status"},
		{`DELETE FROM articles WHERE id = ?`, "DELETE", "articles"},
		{`PRAGMA foreign_keys`, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.queryType, extractQueryType(tc.sql))
			assert.Equal(t, tc.table, extractTableName(tc.sql))
		})
	}
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, parseGormLevel("silent"))
	assert.Equal(t, gormlogger.Error, parseGormLevel("error"))
	assert.Equal(t, gormlogger.Warn, parseGormLevel("warn"))
	assert.Equal(t, gormlogger.Info, parseGormLevel("info"))
}

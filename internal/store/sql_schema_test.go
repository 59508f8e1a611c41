package store

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// The repositories hardcode column names while the schema lives in the goose
// migrations. These tests read the migration files and check every column a
// query touches against the table definition, so a rename on either side
// fails fast instead of surfacing as a 42703 on a live database.

var (
	insertIntoUsersPattern = regexp.MustCompile(`INSERT INTO users \(([^)]+)\)`)
	returningPattern       = regexp.MustCompile(`RETURNING ([^;]+);`)
	selectFromPattern      = regexp.MustCompile(`(?s)SELECT (.+?)\s+FROM`)
	whereColumnPattern     = regexp.MustCompile(`WHERE (\w+) =`)
)

// migrationColumns parses the body of the CREATE TABLE statement for table
// out of the given migration file and returns the declared column names.
func migrationColumns(t *testing.T, migrationFile, table string) map[string]bool {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "..", "migrations", migrationFile))
	if err != nil {
		t.Fatalf("failed to read migration %s: %v", migrationFile, err)
	}

	columns := make(map[string]bool)
	inTable := false
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "CREATE TABLE IF NOT EXISTS "+table:
			inTable = true
		case inTable && strings.HasPrefix(trimmed, ")"):
			return columns
		case inTable && trimmed != "" && trimmed != "(":
			columns[strings.Fields(trimmed)[0]] = true
		}
	}

	t.Fatalf("table %s not found in migration %s", table, migrationFile)
	return nil
}

// queryColumns collects every column name a SQL query references.
func queryColumns(query string) []string {
	var columns []string
	for _, pattern := range []*regexp.Regexp{insertIntoUsersPattern, returningPattern, selectFromPattern} {
		if match := pattern.FindStringSubmatch(query); match != nil {
			for _, column := range strings.Split(match[1], ",") {
				columns = append(columns, strings.TrimSpace(column))
			}
		}
	}
	if match := whereColumnPattern.FindStringSubmatch(query); match != nil {
		columns = append(columns, match[1])
	}
	return columns
}

func TestUserQueries_ColumnsMatchUsersMigration(t *testing.T) {
	defined := migrationColumns(t, "00001_create_users_table.sql", "users")
	if len(defined) == 0 {
		t.Fatal("no columns parsed from the users migration")
	}

	queries := map[string]string{
		"createUser":      createUser,
		"findUserByEmail": findUserByEmail,
	}
	for name, query := range queries {
		referenced := queryColumns(query)
		if len(referenced) == 0 {
			t.Fatalf("no columns parsed from query %s", name)
		}
		for _, column := range referenced {
			if !defined[column] {
				t.Errorf("query %s references column %q, but the users migration does not define it", name, column)
			}
		}
	}
}

func TestTableSpecs_ColumnsMatchVaultMigration(t *testing.T) {
	tables := []struct {
		table   string
		columns []string
	}{
		{CredentialsTable.Table, append(CredentialsTable.SelectColumns, CredentialsTable.InsertColumns...)},
		{CardsTable.Table, append(CardsTable.SelectColumns, CardsTable.InsertColumns...)},
		{NotesTable.Table, append(NotesTable.SelectColumns, NotesTable.InsertColumns...)},
		{WifiNetworksTable.Table, append(WifiNetworksTable.SelectColumns, WifiNetworksTable.InsertColumns...)},
	}

	for _, tt := range tables {
		defined := migrationColumns(t, "00002_create_vault_tables.sql", tt.table)
		if len(defined) == 0 {
			t.Fatalf("no columns parsed for table %s", tt.table)
		}
		for _, column := range tt.columns {
			if !defined[column] {
				t.Errorf("table spec for %s references column %q, but the migration does not define it", tt.table, column)
			}
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertQuery_SQLContainsParts(t *testing.T) {
	credential := models.Credential{
		UserID:   42,
		Title:    "GitHub",
		URL:      "https://github.com",
		Username: "bob",
		Password: "encrypted-blob",
	}

	query, args, err := buildInsertQuery(CredentialsTable, credential)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 5)
	require.Equal(t, int64(42), args[0])
	require.Equal(t, "GitHub", args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into credentials")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$5")

	// all insert columns are present
	for _, col := range CredentialsTable.InsertColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildSelectAllByUserQuery(t *testing.T) {
	query, args, err := buildSelectAllByUserQuery(NotesTable, 7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(7), args[0])

	q := strings.ToLower(query)
	assert.Contains(t, q, "select")
	assert.Contains(t, q, "from notes")
	assert.Contains(t, q, "where")
	assert.Contains(t, q, "user_id")
	assert.Contains(t, q, "order by id")
	assert.Contains(t, query, "$1")
}

func Test_buildSelectByUserAndKeyQuery_UsesKeyColumn(t *testing.T) {
	query, args, err := buildSelectByUserAndKeyQuery(CardsTable, 7, "personal")
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Contains(t, args, int64(7))
	require.Contains(t, args, "personal")

	q := strings.ToLower(query)
	assert.Contains(t, q, "from cards")
	assert.Contains(t, q, "nickname")
	assert.Contains(t, q, "user_id")
}

func Test_buildUpdateQuery_SkipsUserID(t *testing.T) {
	wifi := models.WifiNetwork{
		UserID:   42,
		Title:    "Home",
		WifiName: "home-2.4ghz",
		Password: "encrypted-blob",
	}

	query, args, err := buildUpdateQuery(WifiNetworksTable, 99, wifi)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "update wifi_networks")
	assert.Contains(t, q, "set")
	assert.Contains(t, q, "where id =")

	// ownership column must never appear in the SET clause
	assert.NotContains(t, q, "user_id")
	assert.NotContains(t, args, int64(42))

	// three updatable columns + the id in WHERE
	require.Len(t, args, 4)
	assert.Contains(t, args, int64(99))
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(CredentialsTable, 15)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from credentials")
	assert.Contains(t, q, "where id =")
	require.Equal(t, []any{int64(15)}, args)
}

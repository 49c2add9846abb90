package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildReadBlobQuery(t *testing.T) {
	query, args, err := buildReadBlobQuery("products")

	require.NoError(t, err)
	require.Equal(t, "SELECT value FROM blobs WHERE key = ?", query)
	require.Equal(t, []any{"products"}, args)
}

func TestBuildWriteBlobQuery(t *testing.T) {
	query, args, err := buildWriteBlobQuery("cart", []byte(`[]`))

	require.NoError(t, err)
	require.Contains(t, query, "INSERT INTO blobs")
	require.Contains(t, query, "ON CONFLICT(key) DO UPDATE")
	require.Contains(t, query, "CURRENT_TIMESTAMP")

	// Two placeholders: key and value. CURRENT_TIMESTAMP is inlined.
	require.Len(t, args, 2)
	require.Equal(t, "cart", args[0])
	require.Equal(t, []byte(`[]`), args[1])
}

func TestBuildRemoveBlobQuery(t *testing.T) {
	query, args, err := buildRemoveBlobQuery("current-session-user")

	require.NoError(t, err)
	require.Equal(t, "DELETE FROM blobs WHERE key = ?", query)
	require.Equal(t, []any{"current-session-user"}, args)
}

func TestBuildClearBlobsQuery(t *testing.T) {
	query, args, err := buildClearBlobsQuery()

	require.NoError(t, err)
	require.Equal(t, "DELETE FROM blobs", query)
	require.Empty(t, args)
}

package store

import sq "github.com/Masterminds/squirrel"

// SQLite uses ? placeholders.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildReadBlobQuery(key string) (string, []any, error) {
	return queryBuilder.
		Select("value").
		From("blobs").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildWriteBlobQuery(key string, value []byte) (string, []any, error) {
	return queryBuilder.
		Insert("blobs").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildRemoveBlobQuery(key string) (string, []any, error) {
	return queryBuilder.
		Delete("blobs").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildClearBlobsQuery() (string, []any, error) {
	return queryBuilder.
		Delete("blobs").
		ToSql()
}

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	jcaDataTable = "jcadata"

	columnCollection = "collection"
	columnIdentifier = "identifier"
	columnRecord     = "record"
	columnUpdatedAt  = "updated_at"

	upsertJcaDataSuffix = "ON CONFLICT (" + columnCollection + ", " + columnIdentifier + ") DO UPDATE SET " +
		columnRecord + " = EXCLUDED." + columnRecord + ", " +
		columnUpdatedAt + " = CURRENT_TIMESTAMP"
)

// buildFindJcaDataQuery selects the record stored under identifier.
func buildFindJcaDataQuery(format sq.PlaceholderFormat, collection, identifier string) (string, []any, error) {
	return sq.Select(columnRecord).
		From(jcaDataTable).
		Where(sq.Eq{columnCollection: collection, columnIdentifier: identifier}).
		PlaceholderFormat(format).
		ToSql()
}

// buildFindAllJcaDataQuery selects every record of the collection ordered by
// identifier.
func buildFindAllJcaDataQuery(format sq.PlaceholderFormat, collection string) (string, []any, error) {
	return sq.Select(columnRecord).
		From(jcaDataTable).
		Where(sq.Eq{columnCollection: collection}).
		OrderBy(columnIdentifier).
		PlaceholderFormat(format).
		ToSql()
}

// buildUpsertJcaDataQuery inserts the record or replaces the stored one. The
// ON CONFLICT clause is understood by both PostgreSQL and SQLite.
func buildUpsertJcaDataQuery(format sq.PlaceholderFormat, collection, identifier string, record []byte) (string, []any, error) {
	return sq.Insert(jcaDataTable).
		Columns(columnCollection, columnIdentifier, columnRecord).
		Values(collection, identifier, string(record)).
		Suffix(upsertJcaDataSuffix).
		PlaceholderFormat(format).
		ToSql()
}

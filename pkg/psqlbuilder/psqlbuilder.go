// Package psqlbuilder оборачивает squirrel с плейсхолдерами PostgreSQL ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT builder с $-плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT builder с $-плейсхолдерами
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update создает UPDATE builder с $-плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE builder с $-плейсхолдерами
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}

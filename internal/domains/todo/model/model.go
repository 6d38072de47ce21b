package model

import "github.com/jmcelreavey/todo-li-app/shared/model"

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID       = "id"
	FieldTitle    = "title"
	FieldProgress = "progress"
	FieldBookmark = "bookmark"
	FieldUserID   = "user_id"
)

type Todo struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Progress string `db:"progress"`
	Bookmark bool   `db:"bookmark"`
	UserID   int64  `db:"user_id"`
	model.Metadata
}

package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcelreavey/todo-li-app/shared"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
)

func TestTransformFields(t *testing.T) {
	type updateTodo struct {
		Title    string `db:"title"`
		Progress string `db:"progress"`
		Ignored  string
	}

	fields := shared.TransformFields(updateTodo{Title: "Buy milk", Progress: "complete", Ignored: "x"})

	assert.Equal(t, "Buy milk", fields["title"])
	assert.Equal(t, "complete", fields["progress"])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "Ignored")
}

func TestTransformFields_SkipsZeroValues(t *testing.T) {
	type updateTodo struct {
		Title    string `db:"title"`
		Progress string `db:"progress"`
	}

	fields := shared.TransformFields(updateTodo{Title: "Buy milk"})

	assert.Contains(t, fields, "title")
	assert.NotContains(t, fields, "progress")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(42, "id", "todos")

	where, args := group.GetWhereClause()
	assert.Equal(t, "(todos.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(42)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:1.2.3.4:agent", shared.BuildCacheKey("limiter", "1.2.3.4", "agent"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}

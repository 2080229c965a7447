package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/hiring-portal/internal/models"
)

type fakeQueryEngine struct {
	records  []models.Record
	err      error
	executed []string
}

func (f *fakeQueryEngine) Execute(_ context.Context, query string) ([]models.Record, error) {
	f.executed = append(f.executed, query)
	return f.records, f.err
}

func TestQueryExecutor_Run(t *testing.T) {
	engine := &fakeQueryEngine{records: []models.Record{
		{{Name: "id", Value: 1}, {Name: "name", Value: "a"}},
		{{Name: "id", Value: 2}, {Name: "name", Value: "b"}},
	}}

	result, err := NewQueryExecutor(engine).Run(context.Background(), "SELECT id, name FROM students")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, result.Columns)
	assert.Equal(t, [][]any{{1, "a"}, {2, "b"}}, result.Rows)
	assert.Equal(t, []string{"SELECT id, name FROM students"}, engine.executed)
}

func TestQueryExecutor_RunEmpty(t *testing.T) {
	for _, records := range [][]models.Record{nil, {}, {{}}} {
		result, err := NewQueryExecutor(&fakeQueryEngine{records: records}).Run(context.Background(), "SELECT * FROM jobs")
		require.NoError(t, err)

		assert.Equal(t, []string{}, result.Columns)
		assert.Equal(t, [][]any{}, result.Rows)
	}
}

func TestQueryExecutor_RunFollowsFirstRecordOrder(t *testing.T) {
	engine := &fakeQueryEngine{records: []models.Record{
		{{Name: "title", Value: "Go Engineer"}, {Name: "id", Value: 7}},
		{{Name: "id", Value: 8}, {Name: "title", Value: "Data Engineer"}},
		{{Name: "id", Value: 9}},
	}}

	result, err := NewQueryExecutor(engine).Run(context.Background(), "SELECT title, id FROM jobs")
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "id"}, result.Columns)
	assert.Equal(t, [][]any{
		{"Go Engineer", 7},
		{"Data Engineer", 8},
		{nil, 9},
	}, result.Rows)
}

func TestQueryExecutor_RunRepeatedColumn(t *testing.T) {
	engine := &fakeQueryEngine{records: []models.Record{
		{{Name: "id", Value: 1}, {Name: "title", Value: "Go Engineer"}, {Name: "id", Value: 1}},
		{{Name: "id", Value: 2}, {Name: "title", Value: "Data Engineer"}, {Name: "id", Value: 2}},
	}}

	result, err := NewQueryExecutor(engine).Run(context.Background(), "SELECT id, title, id FROM jobs")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "title"}, result.Columns)
	assert.Equal(t, [][]any{{1, "Go Engineer"}, {2, "Data Engineer"}}, result.Rows)
}

func TestQueryExecutor_RunError(t *testing.T) {
	engine := &fakeQueryEngine{err: errors.New("statement timeout")}

	_, err := NewQueryExecutor(engine).Run(context.Background(), "SELECT * FROM jobs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExecution))
	assert.Contains(t, err.Error(), "statement timeout")
}

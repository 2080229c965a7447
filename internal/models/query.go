package models

// Field is one column of a row returned by the query engine.
type Field struct {
	Name  string
	Value any
}

// Record is a row whose fields keep the order the engine produced them in.
type Record []Field

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

type QueryResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// EmptyQueryResult is the successful result of a query returning nothing.
func EmptyQueryResult() *QueryResult {
	return &QueryResult{
		Columns: []string{},
		Rows:    [][]any{},
	}
}

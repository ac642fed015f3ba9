package domain

import (
	"encoding/json"
	"fmt"
)

// QueryRequest is a single statement to run against the cluster
type QueryRequest struct {
	Statement       string
	ClientContextID string
}

// QueryResult carries either the rows of a successful query or the error
// that ended it
type QueryResult struct {
	Rows []json.RawMessage
	Err  error
}

// IsError reports whether the query failed
func (r QueryResult) IsError() bool {
	return r.Err != nil
}

// RowCount returns the number of rows returned
func (r QueryResult) RowCount() int {
	return len(r.Rows)
}

// Text renders the result for a tool response: the rows as indented JSON, or
// the error message
func (r QueryResult) Text() string {
	if r.Err != nil {
		return fmt.Sprintf("Error executing query: %s", r.Err.Error())
	}

	rows := r.Rows
	if rows == nil {
		rows = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error executing query: %s", err.Error())
	}
	return string(data)
}

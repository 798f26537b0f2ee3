package models

// QueryResult holds the rows returned by one executed statement.
// Headers is empty when the statement produced no result columns.
type QueryResult struct {
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

// QueryEvent is published after every question that reached the translator
type QueryEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	Username  string `json:"username"`
	Question  string `json:"question"`
	SQL       string `json:"sql"`
	RowCount  int    `json:"row_count"`
	Error     string `json:"error,omitempty"`
}

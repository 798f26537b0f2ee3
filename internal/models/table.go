package models

// Column types offered by the table builder.
const (
	TypeText    = "TEXT"
	TypeInteger = "INTEGER"
	TypeReal    = "REAL"
	TypeBoolean = "BOOLEAN"
)

// ColumnSpec is one column of a table definition being built.
type ColumnSpec struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PrimaryKey bool   `json:"primary_key"`
}

// TableDefinition is a table name with its ordered columns.
type TableDefinition struct {
	Name    string       `json:"name"`
	Columns []ColumnSpec `json:"columns"`
}

// ColumnInfo describes a column as reported by the database catalog.
type ColumnInfo struct {
	Name       string `json:"name" db:"name"`
	Type       string `json:"type" db:"type"`
	NotNull    bool   `json:"not_null" db:"notnull"`
	PrimaryKey bool   `json:"pk" db:"pk"`
}

// TableInfo is a table with its columns in declaration order.
type TableInfo struct {
	Name    string       `json:"name"`
	Columns []ColumnInfo `json:"columns"`
}

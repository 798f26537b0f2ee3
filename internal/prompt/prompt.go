// Package prompt builds the text sent to the language model.
package prompt

import (
	"fmt"
	"strings"
)

// Example is a worked question/query pair shown to the model.
type Example struct {
	Question string
	Query    string
}

// StudentSchema describes the fixed STUDENT table.
const StudentSchema = `Table: STUDENT
- PRN (INTEGER)
- NAME (TEXT)
- CLASS (TEXT)
- SECTION (TEXT)
- MARKS (INTEGER)`

const noTables = "No tables exist yet."

var studentExamples = []Example{
	{Question: "How many entries of records are present?", Query: "SELECT COUNT(*) FROM STUDENT;"},
	{Question: "Tell me all the students studying in the Data Science class?", Query: "SELECT * FROM STUDENT WHERE CLASS='Data Science';"},
}

var genericExamples = []Example{
	{Question: "How many rows does the orders table have?", Query: "SELECT COUNT(*) FROM orders;"},
	{Question: "Show all employees with salary > 50000", Query: "SELECT * FROM employees WHERE salary > 50000;"},
}

// Composer merges the instruction template with a user question.
type Composer struct {
	fixedSchema string
	examples    []Example
}

// NewFixedComposer returns a composer that always describes the STUDENT table.
func NewFixedComposer() *Composer {
	return &Composer{fixedSchema: StudentSchema, examples: studentExamples}
}

// NewSchemaComposer returns a composer that embeds the schema passed to Compose.
func NewSchemaComposer() *Composer {
	return &Composer{examples: genericExamples}
}

// Fixed reports whether the composer ignores the schema argument.
func (c *Composer) Fixed() bool {
	return c.fixedSchema != ""
}

// Compose returns the full prompt. The output depends only on the arguments
// and the composer's mode. The question is passed through unvalidated.
func (c *Composer) Compose(question, schema string) string {
	if c.fixedSchema != "" {
		schema = c.fixedSchema
	}
	schema = strings.TrimSpace(schema)
	if schema == "" {
		schema = noTables
	}

	var b strings.Builder
	b.WriteString("You are an expert in converting English questions to SQL queries.\n")
	b.WriteString("The following tables and their columns exist in the database:\n\n")
	b.WriteString(schema)
	b.WriteString("\n\n")

	for i, ex := range c.examples {
		fmt.Fprintf(&b, "Example %d: %q\nOutput: %s\n\n", i+1, ex.Question, ex.Query)
	}

	b.WriteString("Return only the SQL query. Do not wrap it in triple backticks, ")
	b.WriteString("do not prefix it with the word SQL, and do not add any explanation.\n\n")
	fmt.Fprintf(&b, "Question: %s", question)

	return b.String()
}

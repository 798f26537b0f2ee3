package models

// StudentTable is the fixed table used by the console tool and the fixed prompt.
const StudentTable = "STUDENT"

// Student represents a row of the STUDENT table.
// Values are kept as entered on the console; SQLite type affinity converts them.
type Student struct {
	PRN     string `db:"PRN"`
	Name    string `db:"NAME"`
	Class   string `db:"CLASS"`
	Section string `db:"SECTION"`
	Marks   string `db:"MARKS"`
}

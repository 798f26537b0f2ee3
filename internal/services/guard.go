package services

import (
	"errors"
	"strings"
	"unicode"
)

// ErrStatementNotAllowed is returned by the read-only guard.
var ErrStatementNotAllowed = errors.New("only single read-only statements are allowed")

var readOnlyKeywords = map[string]struct{}{
	"SELECT":  {},
	"WITH":    {},
	"EXPLAIN": {},
	"VALUES":  {},
}

var writeKeywords = map[string]struct{}{
	"INSERT": {}, "UPDATE": {}, "DELETE": {}, "REPLACE": {}, "MERGE": {},
	"CREATE": {}, "DROP": {}, "ALTER": {}, "TRUNCATE": {}, "RENAME": {},
	"ATTACH": {}, "DETACH": {}, "PRAGMA": {}, "VACUUM": {}, "REINDEX": {},
	"GRANT": {}, "REVOKE": {}, "COPY": {},
}

var schemaKeywords = map[string]struct{}{
	"CREATE": {}, "DROP": {}, "ALTER": {}, "RENAME": {},
}

// CheckReadOnly accepts a single statement that starts with a read-only
// keyword and contains no write keyword outside string literals. A keyword
// followed by an opening parenthesis is a function call, as in REPLACE(x, a, b).
func CheckReadOnly(query string) error {
	statements := scanSQL(query)
	if len(statements) != 1 || len(statements[0]) == 0 {
		return ErrStatementNotAllowed
	}
	words := statements[0]
	if _, ok := readOnlyKeywords[words[0].text]; !ok {
		return ErrStatementNotAllowed
	}
	for _, w := range words {
		if w.call {
			continue
		}
		if _, ok := writeKeywords[w.text]; ok {
			return ErrStatementNotAllowed
		}
	}
	return nil
}

// IsSchemaChange reports whether any statement in query may alter the catalog.
func IsSchemaChange(query string) bool {
	for _, words := range scanSQL(query) {
		if len(words) == 0 {
			continue
		}
		if _, ok := schemaKeywords[words[0].text]; ok {
			return true
		}
	}
	return false
}

type sqlWord struct {
	text string
	call bool
}

// scanSQL splits query into non-empty statements on semicolons and returns
// the upper-cased bare words of each, skipping comments, string literals and
// quoted identifiers.
func scanSQL(query string) [][]sqlWord {
	var (
		statements [][]sqlWord
		words      []sqlWord
		word       strings.Builder
		hasContent bool
	)

	rs := []rune(query)

	// flush ends the current word; next is the index after its last rune.
	flush := func(next int) {
		if word.Len() == 0 {
			return
		}
		j := next
		for j < len(rs) && unicode.IsSpace(rs[j]) {
			j++
		}
		words = append(words, sqlWord{
			text: strings.ToUpper(word.String()),
			call: j < len(rs) && rs[j] == '(',
		})
		word.Reset()
	}
	endStatement := func() {
		if hasContent {
			statements = append(statements, words)
		}
		words = nil
		hasContent = false
	}

	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '-' && i+1 < len(rs) && rs[i+1] == '-':
			flush(i)
			for i < len(rs) && rs[i] != '\n' {
				i++
			}
		case r == '/' && i+1 < len(rs) && rs[i+1] == '*':
			flush(i)
			i += 2
			for i+1 < len(rs) && !(rs[i] == '*' && rs[i+1] == '/') {
				i++
			}
			i++
		case r == '\'' || r == '"' || r == '`':
			flush(i)
			hasContent = true
			quote := r
			for i++; i < len(rs); i++ {
				if rs[i] == quote {
					if i+1 < len(rs) && rs[i+1] == quote {
						i++
						continue
					}
					break
				}
			}
		case r == ';':
			flush(i)
			endStatement()
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			word.WriteRune(r)
			hasContent = true
		default:
			flush(i)
			if !unicode.IsSpace(r) {
				hasContent = true
			}
		}
	}
	flush(len(rs))
	endStatement()

	return statements
}

// Command students inserts STUDENT records typed at the console and prints
// the table afterwards.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-text2sql/internal/database"
	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
	"github.com/sbilibin2017/gw-text2sql/internal/services"
)

var errInputClosed = errors.New("input closed")

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	_ = godotenv.Load(*configPath)
	dsn := os.Getenv("TARGET_DB_DSN")
	if dsn == "" {
		dsn = "student.db"
	}
	level := os.Getenv("APP_LOG_LEVEL")
	if level == "" {
		level = "error"
	}

	if err := logger.Initialize(level); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(context.Background(), dsn, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("students: %v", err)
	}
}

func run(ctx context.Context, dsn string, in io.Reader, out io.Writer) error {
	db, err := database.OpenSQLite(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := services.NewStudentService(repositories.NewStudentRepository(db))
	if err := svc.Prepare(ctx); err != nil {
		return err
	}

	return insertStudents(ctx, svc, bufio.NewScanner(in), out)
}

// studentInserter is the part of StudentService the console needs.
type studentInserter interface {
	Insert(ctx context.Context, students []models.Student) ([][]any, error)
}

func insertStudents(ctx context.Context, svc studentInserter, in *bufio.Scanner, out io.Writer) error {
	countText, err := ask(in, out, "How many student records do you want to insert? ")
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(countText)
	if err != nil || count < 0 {
		return fmt.Errorf("invalid record count %q", countText)
	}

	students := make([]models.Student, 0, count)
	for i := 0; i < count; i++ {
		fmt.Fprintf(out, "\nEntering details for student %d:\n", i+1)

		var s models.Student
		fields := []struct {
			prompt string
			dst    *string
		}{
			{"Enter PRN (number): ", &s.PRN},
			{"Enter Name: ", &s.Name},
			{"Enter Class: ", &s.Class},
			{"Enter Section: ", &s.Section},
			{"Enter Marks (integer): ", &s.Marks},
		}
		for _, f := range fields {
			if *f.dst, err = ask(in, out, f.prompt); err != nil {
				return err
			}
		}
		students = append(students, s)
	}

	rows, err := svc.Insert(ctx, students)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nThe inserted records are:")
	for _, row := range rows {
		fmt.Fprintln(out, formatRow(row))
	}
	return nil
}

func ask(in *bufio.Scanner, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(in.Text()), nil
}

func formatRow(row []any) string {
	parts := make([]string, len(row))
	for i, v := range row {
		switch v := v.(type) {
		case string:
			parts[i] = strconv.Quote(v)
		case nil:
			parts[i] = "NULL"
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

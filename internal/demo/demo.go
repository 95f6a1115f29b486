// Package demo прогоняет поиск по id, выборку всех строк и вставку
// через DepartmentRepository и печатает результаты в читаемом виде.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/department-dao/internal/domain"
	"github.com/department-dao/internal/repository"
)

// LookupID - идентификатор, который ищет первый шаг
const LookupID int64 = 4

// SeedNames - подразделения, которыми заполняется пустая таблица
var SeedNames = []string{"Computers", "Electronics", "Fashion", "Books"}

// Seed заполняет таблицу, только если в ней нет ни одной строки.
// Возвращает число вставленных строк.
func Seed(ctx context.Context, repo repository.DepartmentRepository) (int, error) {
	existing, err := repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, name := range SeedNames {
		if _, err := repo.Insert(ctx, domain.Department{Name: name}); err != nil {
			return i, fmt.Errorf("seed %q: %w", name, err)
		}
	}
	return len(SeedNames), nil
}

// Run выполняет три шага по очереди. Первая ошибка прерывает выполнение.
func Run(ctx context.Context, repo repository.DepartmentRepository, out io.Writer) error {
	fmt.Fprintln(out, "=== TEST 1: department findById =====")
	dept, found, err := repo.FindByID(ctx, LookupID)
	if err != nil {
		return fmt.Errorf("find by id: %w", err)
	}
	if found {
		fmt.Fprintln(out, dept)
	} else {
		fmt.Fprintln(out, "not found")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== TEST 2: department findAll =====")
	all, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("find all: %w", err)
	}
	for _, d := range all {
		fmt.Fprintln(out, d)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== TEST 3: department insert =====")
	inserted, err := repo.Insert(ctx, domain.Department{Name: "Music"})
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	fmt.Fprintf(out, "Inserted! New id: %d\n", inserted.ID)
	fmt.Fprintln(out)

	return nil
}

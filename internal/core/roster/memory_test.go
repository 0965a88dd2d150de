// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/platform/apperr"
	"github.com/taibuivan/cinedex/internal/platform/database/schema"
)

// memoryDB is an in-memory [Transactor]. A failed unit of work restores the
// snapshot taken when it began, like a rolled back transaction.
type memoryDB struct {
	mu sync.Mutex

	movies  map[int64]movie.Movie
	persons map[int64]person.Person
	rows    map[string][]Row

	nextMovieID  int64
	nextPersonID int64
	nextRowID    int64

	// insertErr, when set, fails every association insert.
	insertErr error
}

type memorySnapshot struct {
	movies       map[int64]movie.Movie
	persons      map[int64]person.Person
	rows         map[string][]Row
	nextPersonID int64
	nextRowID    int64
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		movies:  map[int64]movie.Movie{},
		persons: map[int64]person.Person{},
		rows:    map[string][]Row{},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (db *memoryDB) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	snapshot := db.snapshot()
	if err := fn(ctx, memoryTx{db: db}); err != nil {
		db.restore(snapshot)
		return err
	}
	return nil
}

func (db *memoryDB) snapshot() memorySnapshot {
	rows := make(map[string][]Row, len(db.rows))
	for table, tableRows := range db.rows {
		rows[table] = slices.Clone(tableRows)
	}
	return memorySnapshot{
		movies:       maps.Clone(db.movies),
		persons:      maps.Clone(db.persons),
		rows:         rows,
		nextPersonID: db.nextPersonID,
		nextRowID:    db.nextRowID,
	}
}

func (db *memoryDB) restore(snapshot memorySnapshot) {
	db.movies = snapshot.movies
	db.persons = snapshot.persons
	db.rows = snapshot.rows
	db.nextPersonID = snapshot.nextPersonID
	db.nextRowID = snapshot.nextRowID
}

// seedMovie and seedPerson are fixture helpers used outside transactions.
func (db *memoryDB) seedMovie(title string) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.nextMovieID++
	db.movies[db.nextMovieID] = movie.Movie{ID: db.nextMovieID, Title: title}
	return db.nextMovieID
}

func (db *memoryDB) seedPerson(name string) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.nextPersonID++
	db.persons[db.nextPersonID] = person.Person{ID: db.nextPersonID, Name: name}
	return db.nextPersonID
}

func (db *memoryDB) personCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.persons)
}

type memoryTx struct {
	db *memoryDB
}

func (tx memoryTx) Movies() movie.Repository   { return memoryMovies(tx) }
func (tx memoryTx) Persons() person.Repository { return memoryPersons(tx) }
func (tx memoryTx) Credits() Store             { return memoryCredits(tx) }

// # Movies

type memoryMovies memoryTx

func (repo memoryMovies) LoadForUpdate(_ context.Context, id int64) (*movie.Movie, error) {
	stored, ok := repo.db.movies[id]
	if !ok {
		return nil, apperr.NotFound("Movie")
	}
	// Rosters are never stored on the movie value, so the copy starts unloaded.
	return &movie.Movie{ID: stored.ID, Title: stored.Title}, nil
}

func (repo memoryMovies) Create(_ context.Context, m *movie.Movie) error {
	repo.db.nextMovieID++
	m.ID = repo.db.nextMovieID
	repo.db.movies[m.ID] = movie.Movie{ID: m.ID, Title: m.Title}
	return nil
}

// # Persons

type memoryPersons memoryTx

func (repo memoryPersons) FindByID(_ context.Context, id int64) (*person.Person, error) {
	stored, ok := repo.db.persons[id]
	if !ok {
		return nil, apperr.NotFound("Person")
	}
	return &stored, nil
}

func (repo memoryPersons) Insert(_ context.Context, p *person.Person) error {
	repo.db.nextPersonID++
	p.ID = repo.db.nextPersonID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	repo.db.persons[p.ID] = *p
	return nil
}

func (repo memoryPersons) Search(_ context.Context, _ person.Filter, limit, offset int) ([]*person.Person, int, error) {
	ids := slices.Sorted(maps.Keys(repo.db.persons))
	var page []*person.Person
	for index, id := range ids {
		if index >= offset && len(page) < limit {
			stored := repo.db.persons[id]
			page = append(page, &stored)
		}
	}
	return page, len(ids), nil
}

// # Credits

type memoryCredits memoryTx

func (store memoryCredits) List(_ context.Context, table schema.MovieCreditTable, movieID int64) ([]Row, error) {
	result := []Row{}
	for _, row := range store.db.rows[table.Table] {
		if row.MovieID != movieID {
			continue
		}
		row.Person = store.db.persons[row.Person.ID]
		if !table.Ranked() {
			row.Rank = 0
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (store memoryCredits) Replace(ctx context.Context, table schema.MovieCreditTable, movieID int64, rows []Row) error {
	if _, err := store.DeleteAll(ctx, table, movieID); err != nil {
		return err
	}
	return store.Insert(ctx, table, movieID, rows)
}

func (store memoryCredits) Insert(_ context.Context, table schema.MovieCreditTable, movieID int64, rows []Row) error {
	if store.db.insertErr != nil && len(rows) > 0 {
		return store.db.insertErr
	}

	for _, row := range rows {
		if _, ok := store.db.persons[row.Person.ID]; !ok {
			return errors.New("foreign key violation on person_id")
		}
		store.db.nextRowID++
		store.db.rows[table.Table] = append(store.db.rows[table.Table], Row{
			ID:        store.db.nextRowID,
			MovieID:   movieID,
			Person:    person.Person{ID: row.Person.ID},
			Role:      row.Role,
			Rank:      row.Rank,
			CreatedAt: time.Now(),
		})
	}
	return nil
}

func (store memoryCredits) DeletePerson(_ context.Context, table schema.MovieCreditTable, movieID, personID int64) (int64, error) {
	return store.deleteWhere(table, func(row Row) bool {
		return row.MovieID == movieID && row.Person.ID == personID
	}), nil
}

func (store memoryCredits) DeleteAll(_ context.Context, table schema.MovieCreditTable, movieID int64) (int64, error) {
	return store.deleteWhere(table, func(row Row) bool { return row.MovieID == movieID }), nil
}

func (store memoryCredits) deleteWhere(table schema.MovieCreditTable, match func(Row) bool) int64 {
	before := len(store.db.rows[table.Table])
	store.db.rows[table.Table] = slices.DeleteFunc(store.db.rows[table.Table], match)
	return int64(before - len(store.db.rows[table.Table]))
}

// # Notifications

type recordingNotifier struct {
	mu      sync.Mutex
	changes []Change
	err     error
}

func (notifier *recordingNotifier) Notify(_ context.Context, change Change) error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	notifier.changes = append(notifier.changes, change)
	return notifier.err
}

func (notifier *recordingNotifier) recorded() []Change {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return slices.Clone(notifier.changes)
}

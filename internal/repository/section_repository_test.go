package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-publisher-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSectionRepositoryListByCourse(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "course_id", "name", "color", "student_ids", "created_at", "updated_at"}).
		AddRow("sec-1", "c1", "Group A", "#ff0000", "{s1,s2}", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, name, color, student_ids, created_at, updated_at FROM sections WHERE course_id = $1 ORDER BY name ASC")).
		WithArgs("c1").
		WillReturnRows(rows)

	sections, err := repo.ListByCourse(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Group A", sections[0].Name)
	assert.Equal(t, []string{"s1", "s2"}, []string(sections[0].StudentIDs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, name, color, student_ids, created_at, updated_at FROM sections WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.Equal(t, sql.ErrNoRows, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryExistsByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM sections WHERE course_id = $1 AND name = $2 LIMIT 1")).
		WithArgs("c1", "Group A").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByName(context.Background(), "c1", "Group A", "")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM sections WHERE course_id = $1 AND name = $2 AND id <> $3 LIMIT 1")).
		WithArgs("c1", "Group A", "sec-1").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsByName(context.Background(), "c1", "Group A", "sec-1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectExec("INSERT INTO sections").
		WithArgs(sqlmock.AnyArg(), "c1", "Group A", "#ff0000", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	section := &models.Section{CourseID: "c1", Name: "Group A", Color: "#ff0000", StudentIDs: []string{"s1"}}
	require.NoError(t, repo.Create(context.Background(), section))
	assert.NotEmpty(t, section.ID)
	assert.False(t, section.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryDeleteCascadesLinks(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM topic_section_links WHERE section_id = $1")).
		WithArgs("sec-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sections WHERE id = $1")).
		WithArgs("sec-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "sec-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

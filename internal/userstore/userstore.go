package userstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"userpoint/internal/model"
)

type Config interface {
	DatabaseURL() string
}

type userstore struct {
	db *sqlx.DB
}

func New(config Config) (*userstore, error) {
	db, err := sqlx.Connect("sqlite3", config.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &userstore{db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return store, nil
}

func (s *userstore) Close() error {
	return s.db.Close()
}

func (s *userstore) createTables() error {
	_, err := s.db.Exec(`create table if not exists user(
		ID           text not null primary key,
		Name         text not null,
		Email        text not null unique,
		Password     text not null,
		Address      text not null,
		Latitude     real not null,
		Longitude    real not null,
		Status       text not null,
		RegisteredAt DATETIME not null,
		Token        text not null
	)`)
	if err != nil {
		return fmt.Errorf("creating user table: %w", err)
	}
	return nil
}

func (s *userstore) Create(user *model.User) error {
	res, err := s.db.NamedExec(`insert into user
		(ID, Name, Email, Password, Address, Latitude, Longitude, Status, RegisteredAt, Token)
		values(:ID, :Name, :Email, :Password, :Address, :Latitude, :Longitude, :Status, :RegisteredAt, :Token)`, user)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return model.ErrorDuplicateEmail
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

func (s *userstore) Fetch(userID model.UserID) (*model.User, error) {
	user := &model.User{}
	err := s.db.Get(user, `select * from user where ID = ?`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func (s *userstore) UpdateStatus(userID model.UserID, status string) error {
	res, err := s.db.Exec(`update user set Status = ? where ID = ?`, status, userID)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrorUserNotFound
	}
	return nil
}

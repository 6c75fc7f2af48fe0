package database

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

const tableName = "bela_rounds"

const columns = "id, created_at, player1, player2, player3, player4, trump_seat, trump_suit, team1_score, team2_score, failed_call"

var namedColumns = ":" + strings.ReplaceAll(columns, ", ", ", :")

// Service stores results of completed rounds.
type Service struct {
	db         *sqlx.DB
	m          *sync.Mutex
	table_name string
}

// New opens the database and makes sure the results table exists.
func New(driver, dsn string) (*Service, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		// every connection to ":memory:" would get its own database
		db.SetMaxOpenConns(1)
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id text not null primary key,
		created_at text,
		player1 text,
		player2 text,
		player3 text,
		player4 text,
		trump_seat integer,
		trump_suit text,
		team1_score integer,
		team2_score integer,
		failed_call boolean
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("create %s table: %w", tableName, err)
	}
	logrus.WithFields(logrus.Fields{"driver": driver, "table": tableName}).Info("Results store ready")

	return &Service{
		db:         db,
		m:          &sync.Mutex{},
		table_name: tableName,
	}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

func (s *Service) query(query string, args ...any) ([]RoundResult, error) {
	var results []RoundResult
	if err := s.db.Select(&results, s.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) GetAll() ([]RoundResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.query("SELECT " + columns + " FROM " + s.table_name + " ORDER BY created_at")
}

func (s *Service) GetByID(id string) (RoundResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var result RoundResult
	err := s.db.Get(&result, s.db.Rebind("SELECT "+columns+" FROM "+s.table_name+" WHERE id = ?"), id)
	if err != nil {
		return RoundResult{}, err
	}
	return result, nil
}

func (s *Service) Insert(result RoundResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.NamedExec("INSERT INTO "+s.table_name+" ("+columns+") VALUES ("+namedColumns+")", result)
	return err
}

func (s *Service) GetByPlayer(player_name string) ([]RoundResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	results, err := s.query("SELECT "+columns+" FROM "+s.table_name+
		" WHERE player1 = ? OR player2 = ? OR player3 = ? OR player4 = ? ORDER BY created_at",
		player_name,
		player_name,
		player_name,
		player_name)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows // No results found
	}
	return results, nil
}

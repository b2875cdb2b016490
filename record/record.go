// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package record stores bench runs and their samples in a SQLite database.
//
package record

import (
	"database/sql"
	"sync"
	"time"

	"github.com/db47h/nandsim/testbench"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"

	// SQLite driver.
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id       TEXT PRIMARY KEY,
	dut      TEXT NOT NULL,
	inputs   TEXT NOT NULL,
	outputs  TEXT NOT NULL,
	started  INTEGER NOT NULL,
	period   INTEGER NOT NULL,
	hold     INTEGER NOT NULL,
	samples  INTEGER NOT NULL DEFAULT 0,
	passed   INTEGER
);
CREATE TABLE IF NOT EXISTS samples (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	idx      INTEGER NOT NULL,
	at       INTEGER NOT NULL,
	inputs   TEXT NOT NULL,
	outputs  TEXT NOT NULL,
	want     TEXT,
	ok       INTEGER NOT NULL,
	PRIMARY KEY (run_id, idx)
);
`

// DefaultBatchSize is the number of samples buffered before they are written
// to the database.
const DefaultBatchSize = 1024

// Recorder is a testbench.Reporter that writes runs to a SQLite database.
//
type Recorder struct {
	db        *sql.DB
	batchSize int

	mu     sync.Mutex
	run    string
	batch  []testbench.Sample
	closed bool
}

// Open opens or creates the database at path. Buffered samples are flushed
// when the program exits through atexit.Exit.
//
func Open(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create tables")
	}
	r := &Recorder{db: db, batchSize: DefaultBatchSize}
	atexit.Register(func() { r.Flush() })
	return r, nil
}

// SetBatchSize sets the number of samples buffered before they are written.
//
func (r *Recorder) SetBatchSize(n int) {
	if n < 1 {
		n = 1
	}
	r.batchSize = n
}

// Begin implements testbench.Reporter.
//
func (r *Recorder) Begin(h testbench.Header) error {
	if err := r.Flush(); err != nil {
		return err
	}
	_, err := r.db.Exec(`INSERT INTO runs (id, dut, inputs, outputs, started, period, hold) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.RunID, h.DUT, joinPins(h.Inputs), joinPins(h.Outputs), h.Started.UnixNano(), int64(h.Period), h.Hold)
	if err != nil {
		return errors.Wrap(err, "insert run")
	}
	r.mu.Lock()
	r.run = h.RunID
	r.mu.Unlock()
	return nil
}

// Sample implements testbench.Reporter.
//
func (r *Recorder) Sample(s testbench.Sample) error {
	r.mu.Lock()
	r.batch = append(r.batch, s)
	full := len(r.batch) >= r.batchSize
	r.mu.Unlock()
	if full {
		return r.Flush()
	}
	return nil
}

// End implements testbench.Reporter.
//
func (r *Recorder) End(res *testbench.Result) error {
	if err := r.Flush(); err != nil {
		return err
	}
	_, err := r.db.Exec(`UPDATE runs SET samples = ?, passed = ? WHERE id = ?`,
		len(res.Samples), res.Err() == nil, res.Header.RunID)
	return errors.Wrap(err, "update run")
}

// Flush writes buffered samples to the database.
//
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || len(r.batch) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	st, err := tx.Prepare(`INSERT INTO samples (run_id, idx, at, inputs, outputs, want, ok) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "prepare statement")
	}
	defer st.Close()
	for _, s := range r.batch {
		var want sql.NullString
		if s.Want != nil {
			want = sql.NullString{String: s.Want.String(), Valid: true}
		}
		if _, err = st.Exec(r.run, s.Index, int64(s.At), s.Inputs.String(), s.Outputs.String(), want, s.OK()); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "insert sample %d", s.Index)
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	r.batch = r.batch[:0]
	return nil
}

// Close flushes buffered samples and closes the database.
//
func (r *Recorder) Close() error {
	err := r.Flush()
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	if cerr := r.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// Run is a recorded run.
//
type Run struct {
	ID      string
	DUT     string
	Inputs  []string
	Outputs []string
	Started time.Time
	Period  time.Duration
	Hold    uint
	Samples int
	Passed  *bool // nil if the run did not complete
}

// Runs returns all recorded runs, most recent first.
//
func (r *Recorder) Runs() ([]Run, error) {
	rows, err := r.db.Query(`SELECT id, dut, inputs, outputs, started, period, hold, samples, passed FROM runs ORDER BY started DESC, id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "query runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run             Run
			ins, outs       string
			started, period int64
			passed          sql.NullBool
		)
		if err := rows.Scan(&run.ID, &run.DUT, &ins, &outs, &started, &period, &run.Hold, &run.Samples, &passed); err != nil {
			return nil, errors.Wrap(err, "scan run")
		}
		run.Inputs, run.Outputs = splitPins(ins), splitPins(outs)
		run.Started = time.Unix(0, started)
		run.Period = time.Duration(period)
		if passed.Valid {
			p := passed.Bool
			run.Passed = &p
		}
		runs = append(runs, run)
	}
	return runs, errors.Wrap(rows.Err(), "read runs")
}

// Samples returns the samples of the given run, in order.
//
func (r *Recorder) Samples(runID string) ([]testbench.Sample, error) {
	rows, err := r.db.Query(`SELECT idx, at, inputs, outputs, want FROM samples WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, errors.Wrap(err, "query samples")
	}
	defer rows.Close()

	var ss []testbench.Sample
	for rows.Next() {
		var (
			s         testbench.Sample
			at        int64
			ins, outs string
			want      sql.NullString
		)
		if err := rows.Scan(&s.Index, &at, &ins, &outs, &want); err != nil {
			return nil, errors.Wrap(err, "scan sample")
		}
		s.At = time.Duration(at)
		s.Inputs, s.Outputs = testbench.ParseVector(ins), testbench.ParseVector(outs)
		if want.Valid {
			s.Want = testbench.ParseVector(want.String)
		}
		ss = append(ss, s)
	}
	return ss, errors.Wrap(rows.Err(), "read samples")
}

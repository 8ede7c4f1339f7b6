package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sample-registry/internal/cache"
	"sample-registry/internal/database"
	"sample-registry/internal/model"
	"sample-registry/internal/sequence"
	"sample-registry/internal/store"
)

// timeNow is stubbed by tests that pin the ISO week.
var timeNow = time.Now

var (
	// ErrPlateFull means this week's plate has no free positions left.
	ErrPlateFull = errors.New("This week's plate is full")
	// ErrUnparseableReference means the uploaded reference sequence file
	// could not be parsed in any supported format.
	ErrUnparseableReference = errors.New("Failed to parse reference sequence file.")
)

// AddSample assigns the next free plate position for the current ISO week and
// persists the sample. A supplied reference file is parsed up front, and its
// normalized FASTA copy is written under dataPath before the transaction
// commits; any failure rolls everything back, leaving neither a row nor a
// file. The count-and-insert sequence runs under a per-week advisory lock so
// concurrent submissions cannot share a position.
func AddSample(ctx context.Context, db database.DB, email, name, runningOption string, reference []byte, dataPath string) (*model.Sample, error) {
	now := timeNow()

	// capacity checks must see authoritative settings, not the cache
	settings, err := store.GetCurrentSettings(ctx, db)
	if err != nil {
		return nil, err
	}

	var rec *sequence.Record
	if len(reference) > 0 {
		if rec, err = sequence.Parse(reference); err != nil {
			return nil, ErrUnparseableReference
		}
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	year, week := now.ISOWeek()
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(year)*100+int64(week)); err != nil {
		return nil, err
	}

	count, err := store.CountSamplesSince(ctx, tx, WeekStart(now))
	if err != nil {
		return nil, err
	}
	if count >= settings.PlateCapacity() {
		return nil, ErrPlateFull
	}

	key, err := SamplePrimaryKey(now, count, settings.PlateNRows, settings.PlateNCols)
	if err != nil {
		return nil, err
	}

	sample := &model.Sample{
		Date:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		PrimaryKey:    key,
		Email:         email,
		Name:          name,
		RunningOption: runningOption,
	}
	if rec != nil {
		desc := rec.ID
		sample.ReferenceSequenceDescription = &desc
	}
	if _, err := store.CreateSample(ctx, tx, sample); err != nil {
		return nil, err
	}

	if rec == nil {
		return sample, tx.Commit(ctx)
	}

	path := ReferencePath(dataPath, now, key, name)
	if err := sequence.WriteFasta(path, rec); err != nil {
		os.Remove(path)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		os.Remove(path)
		return nil, err
	}
	return sample, nil
}

// ReferencePath is <root>/<year>/<week>/inputs/references/<primary_key>_<name>.fasta.
func ReferencePath(root string, t time.Time, primaryKey, name string) string {
	year, week := t.ISOWeek()
	return filepath.Join(root, fmt.Sprint(year), fmt.Sprint(week), "inputs", "references",
		fmt.Sprintf("%s_%s.fasta", primaryKey, name))
}

// RemainingSamples reports how many submissions the current week still
// accepts. Past the weekly deadline the answer is zero even if the plate has
// free positions.
func RemainingSamples(ctx context.Context, db database.Querier, rdb cache.Cache) (int, error) {
	now := timeNow()
	settings, err := CurrentSettings(ctx, db, rdb)
	if err != nil {
		return 0, err
	}
	if ISOWeekday(now) > settings.LastSubmissionDay {
		return 0, nil
	}
	count, err := store.CountSamplesSince(ctx, db, WeekStart(now))
	if err != nil {
		return 0, err
	}
	remaining := settings.PlateCapacity() - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

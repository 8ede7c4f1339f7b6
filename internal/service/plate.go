package service

import (
	"fmt"
	"time"
)

// PlatePosition labels the index-th position of an nRows x nCols plate.
// Positions are assigned row-major: index 0 is A1, index nCols-1 ends row A,
// and the next index starts B1.
func PlatePosition(index, nRows, nCols int) (string, error) {
	if nRows <= 0 || nCols <= 0 {
		return "", fmt.Errorf("invalid plate geometry %dx%d", nRows, nCols)
	}
	if index < 0 || index >= nRows*nCols {
		return "", fmt.Errorf("plate position %d out of range for %dx%d plate", index, nRows, nCols)
	}
	row := index / nCols
	if row >= 26 {
		return "", fmt.Errorf("plate row %d beyond Z", row)
	}
	return fmt.Sprintf("%c%d", rune('A'+row), index%nCols+1), nil
}

// SamplePrimaryKey derives the identifier unique within an ISO week,
// e.g. 22_46_A1 for the first position in week 46 of 2022.
func SamplePrimaryKey(t time.Time, index, nRows, nCols int) (string, error) {
	pos, err := PlatePosition(index, nRows, nCols)
	if err != nil {
		return "", err
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d_%d_%s", year%100, week, pos), nil
}

// WeekStart returns midnight on the Monday of t's ISO week, in t's location.
func WeekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return t.AddDate(0, 0, 1-ISOWeekday(t))
}

// ISOWeekday maps t's weekday to ISO numbering, Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

package timesheet

import "errors"

// ErrNoWeeks is returned when a log contains no week headers.
var ErrNoWeeks = errors.New("no weeks found in log")

// ErrWeekNotFound indicates that a week key matched none of the parsed weeks.
var ErrWeekNotFound = errors.New("week not found")

// ErrInvalidTask indicates a task reference that is neither a number nor "meet".
var ErrInvalidTask = errors.New("task must be a number or \"meet\"")

// ErrInvalidHours indicates a negative or non-finite session duration.
var ErrInvalidHours = errors.New("hours must be a finite, non-negative number")

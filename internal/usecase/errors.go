package usecase

import "errors"

// Stage errors. Every failure is fatal; the driver matches on these to name
// the stage that aborted the run.
var (
	ErrFetch  = errors.New("dataset fetch failed")
	ErrParse  = errors.New("dataset parse failed")
	ErrSchema = errors.New("schema setup failed")
	ErrInsert = errors.New("bulk insert failed")
	ErrQuery  = errors.New("query failed")
	ErrVerify = errors.New("verification failed")
)

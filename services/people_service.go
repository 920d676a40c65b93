package services

import (
	"context"
	"fmt"
	"log/slog"
	"people-lab/domain/people"
	"people-lab/errors"
	"people-lab/runtime"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

type Operation string

const (
	FilterByLength       Operation = "filter-by-length"
	EveryNPerson         Operation = "every-n-person"
	Initials             Operation = "initials"
	PeopleWithPosition   Operation = "people-with-position"
	SortByFirstName      Operation = "sort-by-first-name"
	SortByLastName       Operation = "sort-by-last-name"
	CountTotalCharacters Operation = "count-total-characters"
	EveryoneHasLetter    Operation = "everyone-has-letter"
	SomeoneHasLetter     Operation = "someone-has-letter"
)

var operations = []Operation{
	FilterByLength,
	EveryNPerson,
	Initials,
	PeopleWithPosition,
	SortByFirstName,
	SortByLastName,
	CountTotalCharacters,
	EveryoneHasLetter,
	SomeoneHasLetter,
}

type Request struct {
	Operation Operation `validate:"required"`
	Length    int       `validate:"min=0"`
	Step      int       `validate:"min=0"`
	Letter    string
}

// Result carries exactly one of Names, Count or Verdict depending on the operation.
type Result struct {
	Operation Operation
	Names     []string
	Count     *int
	Verdict   *bool
}

type IPeopleService interface {
	Apply(ctx context.Context, req Request) (Result, error)
	Operations() []Operation
}

type PeopleService struct {
	log    *slog.Logger
	source runtime.IRosterSource
}

func NewPeopleService(log *slog.Logger, source runtime.IRosterSource) IPeopleService {
	return &PeopleService{log: log, source: source}
}

// Operations lists every supported operation in a stable order.
func (s *PeopleService) Operations() []Operation {
	return append([]Operation(nil), operations...)
}

// Apply loads the roster and runs the requested operation on it.
// A name that does not split into "First Last" makes the name-based
// operations fail with ErrMalformedName instead of crashing the caller.
func (s *PeopleService) Apply(ctx context.Context, req Request) (Result, error) {
	// 1. Validate the request before touching the roster
	if err := validate.Struct(req); err != nil {
		return Result{}, fmt.Errorf("invalid request: %w", err)
	}
	if !lo.Contains(operations, req.Operation) {
		return Result{}, fmt.Errorf("%q: %w", req.Operation, errors.ErrUnknownOperation)
	}
	if (req.Operation == EveryoneHasLetter || req.Operation == SomeoneHasLetter) && req.Letter == "" {
		return Result{}, errors.ErrMissingLetter
	}

	log := s.log.With("run_id", uuid.NewString(), "operation", req.Operation)

	// 2. Load the roster
	names, err := s.source.Names(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("roster loading failed: %w", err)
	}
	log.Debug("Roster loaded", "size", len(names))

	// 3. Compute
	result, err := compute(req, names)
	if err != nil {
		log.Warn("Operation failed", "error", err)
		return Result{}, err
	}
	log.Info("Operation applied", "size", len(names))
	return result, nil
}

// compute never lets a panic escape, name splitting is the only expected source.
func compute(req Request, names []string) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = fmt.Errorf("%w: %v", errors.ErrMalformedName, r)
		}
	}()

	result = Result{Operation: req.Operation}
	switch req.Operation {
	case FilterByLength:
		result.Names = people.FilterByLength(names, req.Length)
	case EveryNPerson:
		result.Names = people.EveryNPerson(names, req.Step)
	case Initials:
		result.Names = people.Initials(names)
	case PeopleWithPosition:
		result.Names = people.PeopleWithPosition(names)
	case SortByFirstName:
		result.Names = people.SortByFirstName(names)
	case SortByLastName:
		result.Names = people.SortByLastName(names)
	case CountTotalCharacters:
		result.Count = lo.ToPtr(people.CountTotalCharacters(names))
	case EveryoneHasLetter:
		result.Verdict = lo.ToPtr(people.EveryoneHasLetter(names, req.Letter))
	case SomeoneHasLetter:
		result.Verdict = lo.ToPtr(people.SomeoneHasLetter(names, req.Letter))
	default:
		return Result{}, errors.ErrUnknownOperation
	}
	return result, nil
}

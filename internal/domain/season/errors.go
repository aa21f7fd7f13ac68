package season

import (
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrChronology  = crerr.New("results out of chronological order")
	ErrUnknownTeam = crerr.New("unknown team")
	ErrBuilt       = crerr.New("season already built")
)

const dateLayout = "02/01/2006"

// ChronologyError reports a result dated before the latest date already
// ingested. Results are never reordered.
type ChronologyError struct {
	Date   time.Time
	Latest time.Time
}

func (e *ChronologyError) Error() string {
	return fmt.Sprintf("%s: result dated %s precedes %s", ErrChronology, e.Date.Format(dateLayout), e.Latest.Format(dateLayout))
}

func (e *ChronologyError) Is(target error) bool {
	return target == ErrChronology
}

// UnknownTeamError reports a points adjustment for a team that has not
// appeared in any earlier result.
type UnknownTeamError struct {
	Team string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTeam, e.Team)
}

func (e *UnknownTeamError) Is(target error) bool {
	return target == ErrUnknownTeam
}

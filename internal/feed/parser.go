package feed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-stats/internal/domain/match"
	"github.com/riskibarqy/football-stats/internal/domain/season"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

// DateLayout is the ddMMyyyy form of the first field of a result line.
const DateLayout = "02012006"

const (
	directivePoints     = "POINTS"
	directivePrize      = "PRIZE"
	directiveRelegation = "RELEGATION"
	directiveAwarded    = "AWARDED"
	directiveDeducted   = "DEDUCTED"
)

const maxLineBytes = 1 << 20

// Parse reads a results feed and builds the season it describes.
func Parse(r io.Reader) (*season.Season, error) {
	return parse(r, nil)
}

// ParseLines builds a season from an already split feed.
func ParseLines(lines []string) (*season.Season, error) {
	p := newParser(nil)
	for i, line := range lines {
		if err := p.line(i+1, line); err != nil {
			return nil, err
		}
	}
	return p.builder.Build()
}

func parse(r io.Reader, logger *logging.Logger) (*season.Season, error) {
	p := newParser(logger)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	n := 0
	for scanner.Scan() {
		n++
		if err := p.line(n, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &SourceError{Source: "reader", Err: fmt.Errorf("read line %d: %w", n+1, err)}
	}
	return p.builder.Build()
}

type parser struct {
	builder  *season.Builder
	logger   *logging.Logger
	lastDate time.Time
}

func newParser(logger *logging.Logger) *parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &parser{builder: season.NewBuilder(), logger: logger}
}

func (p *parser) line(n int, raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return nil
	}

	fields, err := splitFields(text)
	if err != nil {
		return &FormatError{Line: n, Text: text, Reason: err.Error()}
	}

	l := feedLine{n: n, text: text, fields: fields}
	switch head := fields[0]; {
	case head[0] >= '0' && head[0] <= '9':
		return p.result(l)
	case head == directivePoints:
		return p.points(l)
	case head == directivePrize, head == directiveRelegation:
		return p.zone(l)
	case head == directiveAwarded, head == directiveDeducted:
		return p.adjustment(l)
	default:
		return l.fail(fmt.Sprintf("unknown directive %q", head), nil)
	}
}

// splitFields splits on '|' and trims every field. Trailing empty fields are
// dropped; an empty field before a non-empty one is rejected.
func splitFields(text string) ([]string, error) {
	fields := strings.Split(text, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("line has no fields")
	}
	for i, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("field %d is empty", i+1)
		}
	}
	return fields, nil
}

type feedLine struct {
	n      int
	text   string
	fields []string
}

func (l feedLine) fail(reason string, err error) error {
	return &FormatError{Line: l.n, Text: l.text, Reason: reason, Err: err}
}

func (l feedLine) expect(counts ...int) error {
	for _, c := range counts {
		if len(l.fields) == c {
			return nil
		}
	}
	want := make([]string, 0, len(counts))
	for _, c := range counts {
		want = append(want, strconv.Itoa(c))
	}
	return l.fail(fmt.Sprintf("expected %s fields, got %d", strings.Join(want, " or "), len(l.fields)), nil)
}

func (l feedLine) number(index int, name string) (int, error) {
	v, err := strconv.Atoi(l.fields[index])
	if err != nil {
		return 0, l.fail("invalid "+name, err)
	}
	return v, nil
}

func (p *parser) result(l feedLine) error {
	if err := l.expect(5, 6); err != nil {
		return err
	}
	date, err := parseDate(l.fields[0])
	if err != nil {
		return l.fail("invalid date", err)
	}
	homeGoals, err := l.number(2, "home score")
	if err != nil {
		return err
	}
	awayGoals, err := l.number(4, "away score")
	if err != nil {
		return err
	}
	attendance := match.UnknownAttendance
	if len(l.fields) == 6 {
		if attendance, err = l.number(5, "attendance"); err != nil {
			return err
		}
	}

	r := match.New(date, l.fields[1], homeGoals, l.fields[3], awayGoals, attendance)
	if err := r.Validate(); err != nil {
		return l.fail("invalid result", err)
	}
	if err := p.builder.AddResult(r); err != nil {
		return crerr.Wrapf(err, "feed line %d", l.n)
	}
	if !r.Date.Equal(p.lastDate) {
		p.lastDate = r.Date
		p.logger.Debug("feed date", "date", r.Date.Format(time.DateOnly), "line", l.n)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	if len(value) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("date %q is not ddMMyyyy", value)
	}
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

func (p *parser) points(l feedLine) error {
	if err := l.expect(3); err != nil {
		return err
	}
	win, err := l.number(1, "points for a win")
	if err != nil {
		return err
	}
	draw, err := l.number(2, "points for a draw")
	if err != nil {
		return err
	}
	if err := p.builder.SetPointsRule(season.PointsRule{Win: win, Draw: draw}); err != nil {
		return l.fail("invalid points rule", err)
	}
	return nil
}

func (p *parser) zone(l feedLine) error {
	if err := l.expect(4); err != nil {
		return err
	}
	start, err := l.number(1, "zone start")
	if err != nil {
		return err
	}
	end, err := l.number(2, "zone end")
	if err != nil {
		return err
	}
	add := p.builder.AddPrizeZone
	if l.fields[0] == directiveRelegation {
		add = p.builder.AddRelegationZone
	}
	if err := add(start, end, l.fields[3]); err != nil {
		return l.fail("invalid zone", err)
	}
	return nil
}

func (p *parser) adjustment(l feedLine) error {
	if err := l.expect(3); err != nil {
		return err
	}
	amount, err := l.number(2, "points amount")
	if err != nil {
		return err
	}
	if l.fields[0] == directiveDeducted {
		amount = -amount
	}
	if err := p.builder.AdjustPoints(l.fields[1], amount); err != nil {
		return crerr.Wrapf(err, "feed line %d", l.n)
	}
	return nil
}

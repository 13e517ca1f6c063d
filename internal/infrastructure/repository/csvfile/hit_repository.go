package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/batting-insights/internal/domain/battedball"
)

type column int

const (
	colID column = iota
	colExitVelocity
	colHitDistance
	colLaunchAngle
	colSeason
	colPlayerName
	columnCount
)

var columnNames = [columnCount]string{
	colID:           "play_id",
	colExitVelocity: "ExitVelocity",
	colHitDistance:  "HitDistance",
	colLaunchAngle:  "LaunchAngle",
	colSeason:       "Year",
	colPlayerName:   "PlayerName",
}

// header aliases are matched after lowercasing and dropping '_', '-' and spaces.
var headerAliases = map[string]column{
	"playid":       colID,
	"id":           colID,
	"eventid":      colID,
	"exitvelocity": colExitVelocity,
	"hitdistance":  colHitDistance,
	"launchangle":  colLaunchAngle,
	"year":         colSeason,
	"season":       colSeason,
	"playername":   colPlayerName,
	"player":       colPlayerName,
}

// HitRepository reads batted balls from a CSV file with a header row.
// The file is read in full on every call. Player names are kept byte for byte.
type HitRepository struct {
	path string
}

func NewHitRepository(path string) *HitRepository {
	return &HitRepository{path: path}
}

func (r *HitRepository) ListHits(ctx context.Context) ([]battedball.Hit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, crerr.WithSecondaryError(
			crerr.Wrapf(battedball.ErrSourceUnavailable, "open %s: %v", r.path, err),
			err,
		)
	}
	defer f.Close()

	return Parse(bufio.NewReader(f), r.path)
}

// Parse decodes every record from src. source names the input in error messages.
// The first malformed record aborts the parse.
func Parse(src io.Reader, source string) ([]battedball.Hit, error) {
	reader := csv.NewReader(src)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, crerr.Wrapf(battedball.ErrMalformedRecord, "%s: missing header row", source)
	}
	if err != nil {
		return nil, readError(err, source)
	}

	index, err := mapHeader(header)
	if err != nil {
		return nil, crerr.Wrapf(err, "%s", source)
	}

	hits := make([]battedball.Hit, 0, 64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(err, source)
		}
		if blankRecord(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		hit, err := decodeRecord(record, index)
		if err != nil {
			return nil, crerr.Wrapf(err, "%s line %d", source, line)
		}
		hits = append(hits, hit)
	}

	return hits, nil
}

func mapHeader(header []string) ([columnCount]int, error) {
	var index [columnCount]int
	for i := range index {
		index[i] = -1
	}

	for pos, raw := range header {
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name))
		col, ok := headerAliases[key]
		if !ok || index[col] >= 0 {
			continue
		}
		index[col] = pos
	}

	for col, pos := range index {
		if pos < 0 {
			return index, crerr.Wrapf(battedball.ErrMalformedRecord, "missing column %s", columnNames[col])
		}
	}
	return index, nil
}

func decodeRecord(record []string, index [columnCount]int) (battedball.Hit, error) {
	field := func(col column) string {
		return strings.TrimSpace(record[index[col]])
	}

	exitVelocity, err := parseMeasurement(field(colExitVelocity), colExitVelocity)
	if err != nil {
		return battedball.Hit{}, err
	}
	hitDistance, err := parseMeasurement(field(colHitDistance), colHitDistance)
	if err != nil {
		return battedball.Hit{}, err
	}
	launchAngle, err := parseMeasurement(field(colLaunchAngle), colLaunchAngle)
	if err != nil {
		return battedball.Hit{}, err
	}
	season, err := parseSeason(field(colSeason))
	if err != nil {
		return battedball.Hit{}, err
	}

	return battedball.Hit{
		ID:           field(colID),
		ExitVelocity: exitVelocity,
		HitDistance:  hitDistance,
		LaunchAngle:  launchAngle,
		Season:       season,
		PlayerName:   record[index[colPlayerName]],
	}, nil
}

// parseSeason accepts integral decimals such as "2023.0".
func parseSeason(raw string) (int, error) {
	if season, err := strconv.Atoi(raw); err == nil {
		return season, nil
	}

	v, err := parseMeasurement(raw, colSeason)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, malformedField(colSeason, raw, crerr.New("season is not a whole year"))
	}
	return int(v), nil
}

func parseMeasurement(raw string, col column) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, malformedField(col, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, malformedField(col, raw, crerr.New("value is not finite"))
	}
	return v, nil
}

func malformedField(col column, raw string, cause error) error {
	err := crerr.Wrapf(battedball.ErrMalformedRecord, "column %s value %q", columnNames[col], raw)
	return crerr.WithSecondaryError(err, cause)
}

func readError(err error, source string) error {
	var parseErr *csv.ParseError
	if crerr.As(err, &parseErr) {
		return crerr.WithSecondaryError(
			crerr.Wrapf(battedball.ErrMalformedRecord, "%s line %d column %d", source, parseErr.Line, parseErr.Column),
			err,
		)
	}
	return crerr.WithSecondaryError(
		crerr.Wrapf(battedball.ErrSourceUnavailable, "read %s: %v", source, err),
		err,
	)
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

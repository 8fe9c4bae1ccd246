package conditions

import (
	"strconv"
	"strings"
	"time"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/types"
)

// ageUnits maps duration unit names to their length
var ageUnits = map[string]time.Duration{
	"seconds": time.Second,
	"minutes": time.Minute,
	"hours":   time.Hour,
	"days":    24 * time.Hour,
	"weeks":   7 * 24 * time.Hour,
}

// AgeCondition compares a file's age (now minus last modification time)
// against a threshold, e.g. "> 30 days". The modification time is read
// at evaluation time, never cached.
type AgeCondition struct {
	fs        types.FS
	compare   comparator
	threshold time.Duration
}

// NewAgeCondition parses the comparison expression at construction time;
// a malformed comparator, magnitude, or unit fails before any path is
// evaluated.
func NewAgeCondition(fsys types.FS, args types.Args) (*AgeCondition, error) {
	expression, err := args.String("condition", 0)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConditionInvalid, "age condition")
	}

	fields := strings.Fields(expression)
	if len(fields) != 3 {
		return nil, errors.Newf(errors.ErrConditionInvalid,
			"malformed age condition %q, want \"<comparator> <magnitude> <unit>\"", expression)
	}

	compare, err := lookupComparator(fields[0])
	if err != nil {
		return nil, err
	}

	magnitude, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, errors.Newf(errors.ErrConditionInvalid, "invalid age magnitude: %s", fields[1])
	}

	unit, ok := ageUnits[strings.ToLower(fields[2])]
	if !ok {
		return nil, errors.Newf(errors.ErrConditionInvalid, "unknown age unit: %s", fields[2])
	}

	return &AgeCondition{
		fs:        fsys,
		compare:   compare,
		threshold: time.Duration(magnitude) * unit,
	}, nil
}

// Match compares the file's current age against the threshold
func (c *AgeCondition) Match(path string) (bool, error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}

	age := time.Since(info.ModTime())
	return c.compare(float64(age), float64(c.threshold)), nil
}

func init() {
	RegisterFactory("age", func(fsys types.FS, args types.Args) (types.Condition, error) {
		return NewAgeCondition(fsys, args)
	})
}

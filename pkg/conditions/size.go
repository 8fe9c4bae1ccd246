package conditions

import (
	"strconv"
	"strings"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/types"
)

// sizeUnits maps unit suffixes to byte multipliers. The assignment is
// inverted relative to common convention (kb is 1024, kib is 1000) and
// is kept verbatim: existing rule files depend on it.
var sizeUnits = map[string]float64{
	"b":   1,
	"kb":  1024,
	"mb":  1024 * 1024,
	"gb":  1024 * 1024 * 1024,
	"tb":  1024 * 1024 * 1024 * 1024,
	"kib": 1000,
	"mib": 1000 * 1000,
	"gib": 1000 * 1000 * 1000,
	"tib": 1000 * 1000 * 1000 * 1000,
}

// SizeCondition compares a file's byte length against a threshold,
// e.g. "> 10 mb". The size is read at evaluation time, never cached.
type SizeCondition struct {
	fs        types.FS
	compare   comparator
	threshold float64
}

// NewSizeCondition parses the comparison expression at construction time
func NewSizeCondition(fsys types.FS, args types.Args) (*SizeCondition, error) {
	expression, err := args.String("size", 0)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConditionInvalid, "size condition")
	}

	fields := strings.Fields(expression)
	if len(fields) != 3 {
		return nil, errors.Newf(errors.ErrConditionInvalid,
			"malformed size condition %q, want \"<comparator> <magnitude> <unit>\"", expression)
	}

	compare, err := lookupComparator(fields[0])
	if err != nil {
		return nil, err
	}

	magnitude, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, errors.Newf(errors.ErrConditionInvalid, "invalid size magnitude: %s", fields[1])
	}

	unit, ok := sizeUnits[strings.ToLower(fields[2])]
	if !ok {
		return nil, errors.Newf(errors.ErrConditionInvalid, "unknown size unit: %s", fields[2])
	}

	return &SizeCondition{
		fs:        fsys,
		compare:   compare,
		threshold: magnitude * unit,
	}, nil
}

// Match compares the file's current size against the threshold
func (c *SizeCondition) Match(path string) (bool, error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}

	return c.compare(float64(info.Size()), c.threshold), nil
}

func init() {
	RegisterFactory("size", func(fsys types.FS, args types.Args) (types.Condition, error) {
		return NewSizeCondition(fsys, args)
	})
}

package conditions

import (
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"github.com/filemaid/filemaid/pkg/config"
	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/types"
)

// MimeCondition matches the MIME type sniffed from a file's leading
// bytes. Non-regular files never match. Results are memoized per path
// for the lifetime of the process; the cache is never invalidated, so a
// file rewritten mid-run keeps its first sniffed result.
type MimeCondition struct {
	fs         types.FS
	regex      *regexp.Regexp
	magicBytes int

	mu    sync.Mutex
	cache map[string]bool
}

// NewMimeCondition creates a mime condition. The pattern is matched
// case-insensitively unless ignore_case is false; magic_bytes bounds the
// sniff read and defaults to the configured value.
func NewMimeCondition(fsys types.FS, args types.Args) (*MimeCondition, error) {
	pattern, err := args.String("regex", 0)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConditionInvalid, "mime condition")
	}

	ignoreCase, err := args.BoolOr("ignore_case", true)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConditionInvalid, "mime condition")
	}

	magicBytes, err := args.IntOr("magic_bytes", config.Get().MimeMagicBytes)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConditionInvalid, "mime condition")
	}
	if magicBytes <= 0 {
		return nil, errors.Newf(errors.ErrConditionInvalid, "magic_bytes must be positive, got %d", magicBytes)
	}

	regex, err := compilePrefix(pattern, ignoreCase)
	if err != nil {
		return nil, err
	}

	return &MimeCondition{
		fs:         fsys,
		regex:      regex,
		magicBytes: magicBytes,
		cache:      make(map[string]bool),
	}, nil
}

// Match sniffs the file's MIME type and matches it against the pattern
func (c *MimeCondition) Match(path string) (bool, error) {
	c.mu.Lock()
	if matched, ok := c.cache[path]; ok {
		c.mu.Unlock()
		return matched, nil
	}
	c.mu.Unlock()

	matched, err := c.sniff(path)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.cache[path] = matched
	c.mu.Unlock()
	return matched, nil
}

// sniff reads the leading bytes and detects the content type
func (c *MimeCondition) sniff(path string) (bool, error) {
	info, err := c.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false, nil
	}

	file, err := c.fs.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s for sniffing", path)
	}
	defer func() { _ = file.Close() }()

	buffer := make([]byte, c.magicBytes)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s for sniffing", path)
	}

	detected := mimetype.Detect(buffer[:n]).String()
	// mimetype reports text types with a charset parameter; the pattern
	// matches the bare type
	if i := strings.IndexByte(detected, ';'); i >= 0 {
		detected = strings.TrimSpace(detected[:i])
	}

	return c.regex.MatchString(detected), nil
}

func init() {
	RegisterFactory("mime", func(fsys types.FS, args types.Args) (types.Condition, error) {
		return NewMimeCondition(fsys, args)
	})
}

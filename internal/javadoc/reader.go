package javadoc

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// CommentResolver looks up documentation comments by class and member.
// An empty string means no documentation is available.
type CommentResolver interface {
	ResolveFieldComment(class ClassName, field string) string
	ResolveMethodComment(class ClassName, methodKey string) string
	ResolveMethodParameterComment(class ClassName, methodKey, param string) string
}

var _ CommentResolver = (*Reader)(nil)

// Options configures a Reader.
type Options struct {
	// Dir is the directory holding the documentation files. When blank the
	// JSONDirProperty of Properties is used instead.
	Dir string
	// Properties defaults to SystemProperties().
	Properties PropertySource
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Registerer receives the cache metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// Reader resolves comments from "<class>.json" files and caches every class
// it has looked at, including the ones without documentation, for its whole
// lifetime. It is safe for concurrent use.
type Reader struct {
	dir     string
	log     *slog.Logger
	metrics *readerMetrics

	cache sync.Map // lookup key -> *ClassDoc
	sf    singleflight.Group

	readFile func(name string) ([]byte, error)
}

// NewReader creates a Reader. The documentation directory is resolved here,
// once; later changes to the property source are not observed.
func NewReader(opts Options) *Reader {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Reader{
		dir:      resolveDir(opts, logger),
		log:      logger,
		metrics:  newReaderMetrics(opts.Registerer),
		readFile: os.ReadFile,
	}
}

func resolveDir(opts Options, logger *slog.Logger) string {
	dir := opts.Dir
	if strings.TrimSpace(dir) == "" {
		props := opts.Properties
		if props == nil {
			props = SystemProperties()
		}
		v, ok := props.Property(JSONDirProperty)
		if !ok || strings.TrimSpace(v) == "" {
			return ""
		}
		dir = v
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		logger.Warn("could not make documentation directory absolute", "dir", dir, "error", err)
		return filepath.Clean(dir)
	}
	return abs
}

// Dir returns the absolute documentation directory, or "" when files are
// looked up relative to the working directory.
func (r *Reader) Dir() string {
	return r.dir
}

// ResolveFieldComment returns the comment of a field of class.
func (r *Reader) ResolveFieldComment(class ClassName, field string) string {
	return FieldComment(r.classDoc(class), field)
}

// ResolveMethodComment returns the comment of a method of class. methodKey
// is the signature key used by the extractor, which disambiguates overloads.
func (r *Reader) ResolveMethodComment(class ClassName, methodKey string) string {
	return MethodComment(r.classDoc(class), methodKey)
}

// ResolveMethodParameterComment returns the comment of one parameter of a
// method of class.
func (r *Reader) ResolveMethodParameterComment(class ClassName, methodKey, param string) string {
	return MethodParameterComment(r.classDoc(class), methodKey, param)
}

func (r *Reader) classDoc(class ClassName) *ClassDoc {
	key := LookupKey(class)
	if doc, ok := r.cache.Load(key); ok {
		r.metrics.hits.Inc()
		return doc.(*ClassDoc)
	}
	r.metrics.misses.Inc()

	v, _, shared := r.sf.Do(key, func() (any, error) {
		// a load for this key may have finished between the cache check and Do
		if doc, ok := r.cache.Load(key); ok {
			return doc, nil
		}
		doc, _ := r.cache.LoadOrStore(key, r.load(class, key))
		return doc, nil
	})
	if shared {
		r.metrics.shared.Inc()
	}
	return v.(*ClassDoc)
}

// load never fails: missing and broken files both become an empty ClassDoc.
func (r *Reader) load(class ClassName, key string) *ClassDoc {
	path := r.path(key)

	data, err := r.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Warn("no documentation found", "class", string(class), "path", path)
			r.metrics.loads.WithLabelValues(OutcomeMissing).Inc()
		} else {
			r.log.Error("problem reading documentation file", "class", string(class), "path", path, "error", err)
			r.metrics.loads.WithLabelValues(OutcomeMalformed).Inc()
		}
		return &ClassDoc{}
	}

	doc, err := ParseClassDoc(data)
	if err != nil {
		r.log.Error("problem reading documentation file", "class", string(class), "path", path, "error", err)
		r.metrics.loads.WithLabelValues(OutcomeMalformed).Inc()
		return &ClassDoc{}
	}

	r.log.Debug("loaded documentation", "class", string(class), "path", path,
		"fields", len(doc.FieldComments), "methods", len(doc.MethodComments))
	r.metrics.loads.WithLabelValues(OutcomeFound).Inc()
	return doc
}

func (r *Reader) path(key string) string {
	if r.dir == "" {
		return key
	}
	return filepath.Join(r.dir, key)
}

package crystio

import (
	"github.com/hupe1980/crystio/blobstore"
	"github.com/hupe1980/crystio/parallel"
	"github.com/hupe1980/crystio/resource"
)

// Default source columns of the summation-integrated intensity.
const (
	DefaultIntensityColumn = "intensity.sum.value"
	DefaultVarianceColumn  = "intensity.sum.variance"
)

type options struct {
	backend          string
	numJobs          int
	extraColumns     []string
	verbose          bool
	logger           *Logger
	store            blobstore.BlobStore
	controller       *resource.Controller
	metricsCollector MetricsCollector
	capabilities     *Capabilities
	intensityColumn  string
	varianceColumn   string
	sourceNames      bool
	checkMetadata    bool
}

// Option configures ReadStills.
type Option func(*options)

func defaultOptions() options {
	return options{
		numJobs:          1,
		store:            blobstore.NewLocalStore(""),
		metricsCollector: NoopMetricsCollector{},
		intensityColumn:  DefaultIntensityColumn,
		varianceColumn:   DefaultVarianceColumn,
		checkMetadata:    true,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NewLogger(nil)
	}
	if o.controller == nil {
		o.controller = resource.Shared()
	}
	return o
}

// WithBackend selects the parallel backend by registered name.
//
// The empty name and "serial" read files one after another. "pool" decodes
// files on goroutines. A backend that is unknown or unavailable in this
// process is reported with a warning and the read proceeds serially.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithNumJobs sets the number of chunks the file list is partitioned into,
// which bounds how many files are decoded at once. Values below 1 mean 1.
func WithNumJobs(n int) Option {
	return func(o *options) {
		o.numJobs = max(1, n)
	}
}

// WithExtraColumns requests additional source columns. Scalar columns keep
// their name; vector columns are split into "<name>.0" ... "<name>.k-1".
func WithExtraColumns(columns ...string) Option {
	return func(o *options) {
		o.extraColumns = append(o.extraColumns, columns...)
	}
}

// Verbose enables one Info record per file and a summary record per read.
// Warnings are logged regardless.
func Verbose(v bool) Option {
	return func(o *options) {
		o.verbose = v
	}
}

// WithLogger sets the logger. If nil is passed, a stderr text logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBlobStore sets where paths are resolved. Defaults to the local
// filesystem with paths used as given.
func WithBlobStore(s blobstore.BlobStore) Option {
	return func(o *options) {
		if s != nil {
			o.store = s
		}
	}
}

// WithResourceController bounds workers, in-flight bytes and IO rate.
// Defaults to resource.Shared().
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithMetricsCollector sets a custom metrics collector.
//
// If nil is passed, metrics collection is disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCapabilities overrides the detected process capabilities.
func WithCapabilities(c Capabilities) Option {
	return func(o *options) {
		o.capabilities = &c
	}
}

// WithIntensityColumns selects alternative intensity sources, for example
// "intensity.prf.value" and "intensity.prf.variance".
func WithIntensityColumns(value, variance string) Option {
	return func(o *options) {
		o.intensityColumn = value
		o.varianceColumn = variance
	}
}

// WithSourceColumnNames keeps the source intensity column name instead of
// "I", and names the derived sigma column after the variance column with
// "variance" replaced by "sigma" instead of "SigI".
func WithSourceColumnNames() Option {
	return func(o *options) {
		o.sourceNames = true
	}
}

// WithMetadataCheck toggles the check that the unit cell satisfies the
// space group's crystal system. Basic cell validity is always checked.
func WithMetadataCheck(enabled bool) Option {
	return func(o *options) {
		o.checkMetadata = enabled
	}
}

// capabilitiesOrDetect returns the injected capabilities or the detected ones.
func (o *options) capabilitiesOrDetect() Capabilities {
	if o.capabilities != nil {
		return *o.capabilities
	}
	return DetectCapabilities()
}

func (o *options) parallelConfig() parallel.Config {
	return parallel.Config{Controller: o.controller, NumJobs: o.numJobs}
}

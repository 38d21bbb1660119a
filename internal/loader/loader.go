package loader

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gopkg.microglot.org/parsec.go/internal/exc"
	"gopkg.microglot.org/parsec.go/internal/fs"
	"gopkg.microglot.org/parsec.go/internal/kvconf"
)

type Option func(l *loader) error

func OptionWithFS(fs fs.FileSystem) Option {
	return func(l *loader) error {
		l.FS = fs
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(l *loader) error {
		l.Reporter = reporter
		return nil
	}
}

func OptionWithMaxConcurrency(max int) Option {
	return func(l *loader) error {
		if max < 0 {
			return fmt.Errorf("max concurrency must not be negative: %d", max)
		}
		l.MaxConcurrency = max
		return nil
	}
}

func OptionWithLogger(logger *zap.Logger) Option {
	return func(l *loader) error {
		l.Logger = logger
		return nil
	}
}

// Loader resolves targets and parses them into documents.
type Loader interface {
	Load(ctx context.Context, req *Request) (*Response, error)
}

type Request struct {
	Targets []string
}

type Response struct {
	Documents []*kvconf.Document
}

func New(opts ...Option) (Loader, error) {
	l := &loader{}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	if l.FS == nil {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		local, err := fs.NewFileSystemLocal(wd)
		if err != nil {
			return nil, err
		}
		l.FS = local
	}
	if l.MaxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		l.MaxConcurrency = max
	}
	if l.Semaphore == nil {
		l.Semaphore = newSemaphore(l.MaxConcurrency)
	}
	if l.Reporter == nil {
		l.Reporter = exc.NewReporter(nil)
	}
	if l.Logger == nil {
		l.Logger = zap.NewNop()
	}
	return l, nil
}

type loader struct {
	FS             fs.FileSystem
	MaxConcurrency int
	Semaphore      *semaphore
	Reporter       exc.Reporter
	Logger         *zap.Logger
}

func (self *loader) Load(ctx context.Context, req *Request) (*Response, error) {
	files := make([]fs.File, 0, len(req.Targets))
	for _, target := range req.Targets {
		uri := self.targetURI(target)
		in, err := self.FS.Open(ctx, uri)
		if err != nil {
			return nil, err
		}
		self.Logger.Debug("resolved target", zap.String("target", target), zap.Int("files", len(in)))
		files = append(files, in...)
	}

	loaded := &sync.Map{}
	documents := make([]*kvconf.Document, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for x, file := range files {
		g.Go(func() error {
			doc, err := self.loadFile(gctx, file, loaded)
			if err != nil {
				return err
			}
			documents[x] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	final := make([]*kvconf.Document, 0, len(documents))
	for _, doc := range documents {
		if doc != nil {
			final = append(final, doc)
		}
	}
	sort.Slice(final, func(i, j int) bool {
		return final[i].URI < final[j].URI
	})
	resp := &Response{Documents: final}
	caught := self.Reporter.Reported()
	if len(caught) > 0 {
		return resp, MultiException(caught)
	}
	return resp, nil
}

// loadFile parses one file. Malformed content is reported rather than
// returned so that every file gets a chance to be checked. Only fatal
// reporting outcomes and I/O failures abort the load.
func (self *loader) loadFile(ctx context.Context, file fs.File, loaded *sync.Map) (*kvconf.Document, error) {
	self.Semaphore.Lock()
	defer self.Semaphore.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := file.Path(ctx)
	if _, ok := loaded.LoadOrStore(path, true); ok {
		return nil, nil
	}
	body, err := file.Body(ctx)
	if err != nil {
		return nil, err
	}
	lines, ok := kvconf.ParseLines(body)
	if !ok {
		offset, line, _ := kvconf.FirstInvalid(body)
		loc := exc.LocationAt(path, body, offset)
		self.Logger.Debug("parse failure", zap.String("path", path), zap.Int("line", line))
		_ = self.Reporter.Report(exc.New(loc, exc.CodeParseFailure, fmt.Sprintf("line %d is not a comment, header, or key = value entry", line)))
		return nil, nil
	}
	doc, duplicates := kvconf.Build(path, lines)
	for _, d := range duplicates {
		loc := exc.LocationAt(path, body, lineOffset(body, d.Line))
		msg := fmt.Sprintf("key %q in section %q already set on line %d", d.Key, d.Section, d.First)
		if e := self.Reporter.Report(exc.New(loc, exc.CodeDuplicateKey, msg)); e != nil {
			return nil, e
		}
	}
	self.Logger.Debug("parsed", zap.String("path", path), zap.Int("lines", len(lines)), zap.Int("sections", len(doc.Sections)))
	return doc, nil
}

// lineOffset returns the byte offset of the start of the one based line.
func lineOffset(text string, line int) int {
	offset := 0
	for x := 1; x < line; x = x + 1 {
		idx := strings.IndexByte(text[offset:], '\n')
		if idx < 0 {
			return len(text)
		}
		offset = offset + idx + 1
	}
	return offset
}

func (self *loader) targetURI(target string) string {
	// Targets may be any valid URI or file path. File paths and file URIs
	// are made absolute relative to the root of the configured FileSystem.
	// All non-file URIs are left as-is for some other implementation.
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return target
	}
	if u.Scheme == "file" {
		target = u.Path
	}
	if !filepath.IsAbs(target) {
		return filepath.Join("/", target)
	}
	return target
}

type MultiException []exc.Exception

func (self MultiException) Error() string {
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}

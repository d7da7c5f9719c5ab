package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/chazu/astbin/astbin"
	"github.com/chazu/astbin/bundle"
	"github.com/chazu/astbin/cache"
	"github.com/chazu/astbin/config"
	"github.com/chazu/astbin/decoder"
	"github.com/chazu/astbin/estree"
)

// ---------------------------------------------------------------------------
// Per-file pipeline: read, parse, encode, write
// ---------------------------------------------------------------------------

// Stages a file can fail in. Load covers reading and ESTree parsing;
// encode is the tree-to-buffer step.
const (
	stageLoad   = "load"
	stageEncode = "encode"
	stageWrite  = "write"
)

type fileError struct {
	Stage string
	Path  string
	Err   error
}

func (e *fileError) Error() string {
	return fmt.Sprintf("%s error: %s: %v", e.Stage, e.Path, e.Err)
}

func (e *fileError) Unwrap() error { return e.Err }

type result struct {
	path   string
	data   []byte
	cached bool
	err    error
}

type runner struct {
	cfg   *config.Config
	eo    astbin.Options
	po    estree.Options
	cache *cache.Cache // nil when disabled
	log   commonlog.Logger
}

func newRunner(cfg *config.Config, log commonlog.Logger) (*runner, error) {
	eo, err := cfg.EncoderOptions()
	if err != nil {
		return nil, err
	}
	po, err := cfg.ParseOptions()
	if err != nil {
		return nil, err
	}
	r := &runner{cfg: cfg, eo: eo, po: po, log: log}
	if p := cfg.Resolve(cfg.Cache.Path); p != "" {
		c, err := cache.Open(p)
		if err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}
		r.cache = c
		log.Infof("using cache %s", p)
	}
	return r, nil
}

func (r *runner) Close() error {
	if r.cache == nil {
		return nil
	}
	err := r.cache.Close()
	r.cache = nil
	return err
}

// encodeFile turns one ESTree document into a buffer, consulting the
// cache first.
func (r *runner) encodeFile(path string) ([]byte, bool, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, false, &fileError{stageLoad, path, err}
	}

	var key string
	if r.cache != nil {
		key = cache.Key(input, r.eo, r.po)
		data, err := r.cache.Get(key)
		if err == nil {
			return data, true, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			r.log.Warningf("cache read %s: %v", path, err)
		}
	}

	prog, err := estree.Parse(input, r.po)
	if err != nil {
		return nil, false, &fileError{stageLoad, path, err}
	}
	data, err := astbin.NewEncoder(r.eo).Encode(prog)
	if err != nil {
		return nil, false, &fileError{stageEncode, path, err}
	}

	if r.cache != nil {
		if err := r.cache.Put(key, data); err != nil {
			r.log.Warningf("cache write %s: %v", path, err)
		}
	}
	return data, false, nil
}

// Run encodes files in parallel and writes the outputs. Per-file failures
// are logged and do not stop the other files. It returns the number of
// files that failed.
func (r *runner) Run(ctx context.Context, files []string, dump io.Writer) int {
	jobs := r.cfg.Run.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]result, len(files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = result{path: path, err: &fileError{stageLoad, path, err}}
				return nil
			}
			data, cached, err := r.encodeFile(path)
			results[i] = result{path: path, data: data, cached: cached, err: err}
			return nil
		})
	}
	g.Wait()

	failed := 0
	b := bundle.New()
	bundlePath := r.cfg.Resolve(r.cfg.Output.Bundle)
	root := commonDir(files)
	written := make(map[string]string, len(files))
	for _, res := range results {
		if res.err != nil {
			failed++
			r.log.Errorf("%v", res.err)
			continue
		}
		r.log.Debugf("%s: %d records, cached=%t", res.path, len(res.data)/astbin.HeaderSize, res.cached)

		if dump != nil {
			fmt.Fprintf(dump, "== %s\n", res.path)
			if err := decoder.Dump(dump, res.data, nil); err != nil {
				failed++
				r.log.Errorf("%v", &fileError{stageEncode, res.path, err})
				continue
			}
		}

		if bundlePath != "" {
			b.Add(filepath.ToSlash(res.path), res.data)
			continue
		}
		out := r.outputPath(res.path, root)
		if prev, ok := written[out]; ok {
			failed++
			r.log.Errorf("%v", &fileError{stageWrite, res.path, fmt.Errorf("output %s already written for %s", out, prev)})
			continue
		}
		written[out] = res.path
		if err := writeFile(out, res.data); err != nil {
			failed++
			r.log.Errorf("%v", &fileError{stageWrite, out, err})
			continue
		}
		r.log.Infof("wrote %s", out)
	}

	if bundlePath != "" && len(b.Files) > 0 {
		data, err := bundle.Marshal(b)
		if err == nil {
			err = writeFile(bundlePath, data)
		}
		if err != nil {
			r.log.Errorf("%v", &fileError{stageWrite, bundlePath, err})
			return len(files)
		}
		r.log.Infof("wrote bundle %s (%d files)", bundlePath, len(b.Files))
	}
	return failed
}

// outputPath maps foo/app.json to foo/app.astbin. With an output
// directory the input's location below root is kept, so root/a/app.json
// becomes <dir>/a/app.astbin.
func (r *runner) outputPath(input, root string) string {
	name := strings.TrimSuffix(filepath.Base(input), ".json") + ".astbin"
	dir := r.cfg.Resolve(r.cfg.Output.Dir)
	if dir == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	if abs, err := filepath.Abs(filepath.Dir(input)); err == nil && root != "" {
		if rel, err := filepath.Rel(root, abs); err == nil && isLocal(rel) {
			return filepath.Join(dir, rel, name)
		}
	}
	return filepath.Join(dir, name)
}

// commonDir returns the deepest absolute directory containing every file.
func commonDir(files []string) string {
	var root string
	for i, f := range files {
		abs, err := filepath.Abs(filepath.Dir(f))
		if err != nil {
			return ""
		}
		if i == 0 {
			root = abs
			continue
		}
		for {
			if rel, err := filepath.Rel(root, abs); err == nil && isLocal(rel) {
				break
			}
			parent := filepath.Dir(root)
			if parent == root {
				break
			}
			root = parent
		}
	}
	return root
}

func isLocal(rel string) bool {
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ---------------------------------------------------------------------------
// Inputs
// ---------------------------------------------------------------------------

// collectInputs expands a command line path into ESTree documents. A
// trailing /... walks the directory tree; a plain directory lists only
// its own files.
func collectInputs(path string) ([]string, error) {
	recursive := false
	if strings.HasSuffix(path, "/...") {
		recursive = true
		path = strings.TrimSuffix(path, "/...")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", path, err)
	}

	var files []string
	switch {
	case !info.IsDir():
		if !strings.HasSuffix(path, ".json") {
			return nil, fmt.Errorf("%q is not a .json file", path)
		}
		files = append(files, path)

	case recursive:
		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ".json") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", path, err)
		}

	default:
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
				files = append(files, filepath.Join(path, e.Name()))
			}
		}
	}
	return files, nil
}

// ---------------------------------------------------------------------------
// Bundle verification
// ---------------------------------------------------------------------------

func verifyBundles(w io.Writer, paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		b, err := bundle.Unmarshal(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := b.Verify(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(w, "ok %s (%d files, %d kinds)\n", path, len(b.Files), b.KindCount)
	}
	return nil
}

package textfile

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/guiguan/caster"
	"github.com/npillmayer/mset"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

/*
BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Some constants for fragment size defaults
const (
	minFrag   = 64
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

const defaultBatchSize = 256

// ErrNotRegular is flagged if Load is called for something other than a
// regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// ErrIllegalToken is flagged in strict mode for tokens which do not denote an
// integer.
var ErrIllegalToken = errors.New("textfile: token is not an integer")

// Options control loading of multisets. The zero value and nil are valid
// options, letting the loader use sensible defaults.
type Options struct {
	FragSize  int64 // size of read fragments in bytes; 0 means heuristic
	BatchSize int   // number of elements published at once; 0 means default
	Strict    bool  // fail on tokens which are not integers instead of skipping them
	// Progress, if set, is called after every batch with the number of
	// elements inserted so far.
	Progress func(inserted int)
}

// Load reads a file, which must be a text file, and loads it as a multiset
// of integers. Tokens may be separated by white space, commas or semicolons.
//
// Reading and tokenizing is done asynchronously, but this is transparent to
// the client: Load returns after every element has been inserted. Opening of
// the file is always done synchronously.
func Load(name string, opts *Options) (*mset.Multiset, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, errors.Wrapf(err, "textfile: cannot load %q", name)
	} else if !fi.Mode().IsRegular() {
		return nil, errors.Wrapf(ErrNotRegular, "textfile: cannot load %q", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, errors.Wrapf(err, "textfile: cannot load %q", name)
	}
	defer file.Close()
	o := normalized(opts)
	if o.FragSize <= 0 {
		o.FragSize = fragSizeFor(fi.Size())
	}
	tracer().Debugf("textfile: loading %q (%d bytes) in fragments of %d", name, fi.Size(), o.FragSize)
	s, err := load(file, o)
	if err != nil {
		return s, errors.Wrapf(err, "textfile: loading %q", name)
	}
	return s, nil
}

// LoadReader loads a multiset of integers from r, as does Load for files.
func LoadReader(r io.Reader, opts *Options) (*mset.Multiset, error) {
	if r == nil {
		return nil, mset.ErrIllegalArguments
	}
	o := normalized(opts)
	if o.FragSize <= 0 {
		o.FragSize = twoKb
	}
	return load(r, o)
}

func normalized(opts *Options) Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.BatchSize <= 0 {
		o.BatchSize = defaultBatchSize
	}
	return o
}

// fragSizeFor returns a fragment size depending on the size of a file.
func fragSizeFor(size int64) int64 {
	switch {
	case size < 1024:
		return minFrag
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// load runs the pipeline: a reader goroutine tokenizes r and publishes
// batches of elements, while the calling goroutine inserts them.
func load(r io.Reader, o Options) (*mset.Multiset, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cast := caster.New(ctx) // we will broadcast batches of elements
	sub, ok := cast.Sub(ctx, 4)
	if !ok {
		return nil, errors.New("textfile: cannot subscribe to element broadcast")
	}
	errc := make(chan error, 1)
	go func() {
		defer cast.Close()
		errc <- tokenize(r, o, func(batch []int) bool {
			return cast.Pub(batch)
		})
	}()
	s := mset.New()
	for msg := range sub {
		batch := msg.([]int)
		for _, e := range batch {
			s.Insert(e)
		}
		tracer().Debugf("textfile: inserted batch of %d elements", len(batch))
		if o.Progress != nil {
			o.Progress(s.TotalCount())
		}
	}
	if err := <-errc; err != nil {
		return s, err
	}
	return s, nil
}

// tokenize splits the content of r into segments at line-break opportunities,
// parses integer tokens and hands them to publish in batches.
func tokenize(r io.Reader, o Options, publish func([]int) bool) error {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	src := &errReader{r: r}
	segmenter.Init(bufio.NewReaderSize(src, int(o.FragSize)))
	batch := make([]int, 0, o.BatchSize)
	var cnt int
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		for _, tok := range strings.FieldsFunc(frag, isSeparator) {
			cnt++
			e, err := strconv.Atoi(tok)
			if err != nil {
				if o.Strict {
					return errors.Wrapf(ErrIllegalToken, "token #%d %q", cnt, tok)
				}
				tracer().Debugf("textfile: skipping token #%d %q", cnt, tok)
				continue
			}
			batch = append(batch, e)
			if len(batch) == o.BatchSize {
				if !publish(batch) {
					return errors.New("textfile: element broadcast closed prematurely")
				}
				batch = make([]int, 0, o.BatchSize)
			}
		}
	}
	if src.err != nil {
		return errors.Wrap(src.err, "textfile: reading fragment")
	}
	if len(batch) > 0 && !publish(batch) {
		return errors.New("textfile: element broadcast closed prematurely")
	}
	return nil
}

// errReader remembers the first read error other than io.EOF, which the
// segmenter would otherwise treat as end of input.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}

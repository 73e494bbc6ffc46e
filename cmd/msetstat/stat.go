package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/mset"
	"github.com/npillmayer/mset/formatter"
	"github.com/npillmayer/mset/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// statT holds the commands together with their flag values.
type statT struct {
	Root    *cobra.Command
	Print   *cobra.Command
	Top     *cobra.Command
	Compare *cobra.Command
	Dot     *cobra.Command

	verbose bool
	logger  string
	plain   bool
	width   int
	k       int
	html    bool
}

func newStat() *statT {
	st := &statT{}
	st.Root = &cobra.Command{
		Use:               "msetstat [command] (flags)",
		Short:             "multiset statistics for text files of integers",
		SilenceUsage:      true,
		PersistentPreRunE: st.setupTracing,
	}
	st.Print = &cobra.Command{
		Use:   "print <files>",
		Short: "print the multiset of all integers in the files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  st.runPrint,
	}
	st.Top = &cobra.Command{
		Use:   "top <files>",
		Short: "list the most common integers in the files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  st.runTop,
	}
	st.Compare = &cobra.Command{
		Use:   "compare <file-a> <file-b>",
		Short: "compare the multisets of two files",
		Long: `
Print union and intersection of the multisets of two files, and tell
whether one is included in the other.
`,
		Args: cobra.ExactArgs(2),
		RunE: st.runCompare,
	}
	st.Dot = &cobra.Command{
		Use:   "dot <files>",
		Short: "write the tree of the multiset in Graphviz DOT format",
		Args:  cobra.MinimumNArgs(1),
		RunE:  st.runDot,
	}
	st.Root.AddCommand(st.Print, st.Top, st.Compare, st.Dot)

	st.Root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "verbose tracing")
	st.Root.PersistentFlags().StringVar(&st.logger, "log", "go", "tracing backend (go|logrus)")
	for _, cmd := range []*cobra.Command{st.Print, st.Compare} {
		cmd.Flags().BoolVar(&st.plain, "plain", false, "do not use colors")
		cmd.Flags().IntVar(&st.width, "width", 0, "line width (0: from terminal)")
	}
	st.Top.Flags().IntVarP(&st.k, "k", "k", 10, "number of integers to list")
	st.Top.Flags().BoolVar(&st.html, "html", false, "output an HTML table")
	return st
}

func (st *statT) setupTracing(cmd *cobra.Command, args []string) error {
	var adapter tracing.Adapter
	switch st.logger {
	case "go":
		adapter = gologadapter.GetAdapter()
	case "logrus":
		adapter = logrusadapter.GetAdapter()
	default:
		return errors.Newf("unknown tracing backend %q", st.logger)
	}
	tracer := adapter()
	tracer.SetOutput(cmd.ErrOrStderr())
	if st.verbose {
		tracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		tracer.SetTraceLevel(tracing.LevelError)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tracer }))
	gtrace.CoreTracer = tracer
	return nil
}

// load loads every file and counts all their tokens in a single multiset.
func (st *statT) load(names []string) (*mset.Multiset, error) {
	var s *mset.Multiset
	for _, name := range names {
		t, err := textfile.Load(name, &textfile.Options{
			Progress: func(n int) {
				tracing.Select("mset").Debugf("%s: %d integers", name, n)
			},
		})
		if err != nil {
			return nil, err
		}
		if s == nil {
			s = t
			continue
		}
		for e, c := range t.All() {
			s.InsertMany(e, c)
		}
	}
	return s, nil
}

func (st *statT) output(s *mset.Multiset, w io.Writer) error {
	config := &formatter.Config{LineWidth: st.width}
	if st.width <= 0 {
		config = formatter.ConfigFromTerminal()
	}
	var format formatter.Format = formatter.NewConsole(nil, nil)
	if st.plain {
		format = formatter.Plain{}
	}
	return formatter.Output(s, w, config, format)
}

func (st *statT) runPrint(cmd *cobra.Command, args []string) error {
	s, err := st.load(args)
	if err != nil {
		return err
	}
	stdout := cmd.OutOrStdout()
	if err = st.output(s, stdout); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d distinct integers, %d in total\n", s.Size(), s.TotalCount())
	return nil
}

func (st *statT) runTop(cmd *cobra.Command, args []string) error {
	if st.k < 0 {
		return errors.Wrapf(mset.ErrIllegalArguments, "k = %d", st.k)
	}
	s, err := st.load(args)
	if err != nil {
		return err
	}
	items := s.TopK(st.k)
	stdout := cmd.OutOrStdout()
	if st.html {
		if err = formatter.HTMLTable(items, stdout); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
		return nil
	}
	tbl := tablewriter.NewWriter(stdout)
	tbl.SetHeader([]string{"Rank", "Integer", "Count"})
	for i, it := range items {
		tbl.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", it.Elem),
			fmt.Sprintf("%d", it.Count),
		})
	}
	tbl.Render()
	return nil
}

func (st *statT) runCompare(cmd *cobra.Command, args []string) error {
	a, err := st.load(args[:1])
	if err != nil {
		return err
	}
	b, err := st.load(args[1:])
	if err != nil {
		return err
	}
	stdout := cmd.OutOrStdout()
	fmt.Fprint(stdout, "union: ")
	if err = st.output(mset.Union(a, b), stdout); err != nil {
		return err
	}
	fmt.Fprint(stdout, "intersection: ")
	if err = st.output(mset.Intersection(a, b), stdout); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s included in %s: %t\n", args[0], args[1], mset.Included(a, b))
	fmt.Fprintf(stdout, "%s included in %s: %t\n", args[1], args[0], mset.Included(b, a))
	fmt.Fprintf(stdout, "equal: %t\n", mset.Equals(a, b))
	return nil
}

func (st *statT) runDot(cmd *cobra.Command, args []string) error {
	s, err := st.load(args)
	if err != nil {
		return err
	}
	mset.Mset2Dot(s, cmd.OutOrStdout())
	return nil
}
